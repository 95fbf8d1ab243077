package model

import (
	"fmt"
	"time"

	"github.com/gerow/go-color"
)

// RoleType is a closed set: every role is exactly one of talent, venue or
// curator.
type RoleType int

const (
	RoleTypeTalent RoleType = iota
	RoleTypeVenue
	RoleTypeCurator
)

func ParseRoleType(s string) (RoleType, error) {
	switch s {
	case "talent":
		return RoleTypeTalent, nil
	case "venue":
		return RoleTypeVenue, nil
	case "curator":
		return RoleTypeCurator, nil
	default:
		return 0, fmt.Errorf("unknown role type: %q", s)
	}
}

func (t RoleType) String() string {
	switch t {
	case RoleTypeTalent:
		return "talent"
	case RoleTypeVenue:
		return "venue"
	case RoleTypeCurator:
		return "curator"
	default:
		return fmt.Sprintf("RoleType(%d)", int(t))
	}
}

type RoleCreate struct {
	Type        RoleType
	Subdomain   string
	Name        string
	Timezone    string
	Use24Hour   bool
	AccentColor color.RGB
	Address     string
	CountryCode string
}

type Role struct {
	ID              int64
	EmailVerifiedAt *time.Time
	Groups          []*Group
	RoleCreate
}

// Location resolves the role's configured timezone, falling back to UTC when
// the name is empty or unknown.
func (r *Role) Location() *time.Location {
	if r.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// MembershipLevel orders operator access to a role.
type MembershipLevel string

const (
	LevelOwner    MembershipLevel = "owner"
	LevelMember   MembershipLevel = "member"
	LevelFollower MembershipLevel = "follower"
)
