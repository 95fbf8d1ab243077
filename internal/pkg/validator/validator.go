package validator

import "regexp"

var (
	HexRX       = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	SlugRX      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	SubdomainRX = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	DateRX      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

func In(value string, list ...string) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}
