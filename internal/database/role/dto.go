package role

import (
	"fmt"
	"time"

	"github.com/gerow/go-color"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

type roleDTO struct {
	ID              int64
	Type            string
	Subdomain       string
	Name            string
	Timezone        string
	Use24Hour       bool `db:"use_24_hour"`
	AccentColor     string
	Address         string
	CountryCode     string
	EmailVerifiedAt *time.Time
}

func mapToRole(d *roleDTO) (*model.Role, error) {
	roleType, err := model.ParseRoleType(d.Type)
	if err != nil {
		return nil, fmt.Errorf("role %d: %w", d.ID, err)
	}

	accent := color.RGB{}
	if d.AccentColor != "" {
		accent, err = color.HTMLToRGB(d.AccentColor)
		if err != nil {
			return nil, fmt.Errorf("role %d: map color from %v", d.ID, d.AccentColor)
		}
	}

	return &model.Role{
		ID:              d.ID,
		EmailVerifiedAt: d.EmailVerifiedAt,
		RoleCreate: model.RoleCreate{
			Type:        roleType,
			Subdomain:   d.Subdomain,
			Name:        d.Name,
			Timezone:    d.Timezone,
			Use24Hour:   d.Use24Hour,
			AccentColor: accent,
			Address:     d.Address,
			CountryCode: d.CountryCode,
		},
	}, nil
}

func mapToRoles(dtos []*roleDTO) ([]*model.Role, error) {
	res := make([]*model.Role, len(dtos))
	for i, d := range dtos {
		var err error
		res[i], err = mapToRole(d)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
