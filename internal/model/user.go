package model

type UserCreate struct {
	FullName string
	Email    string
	Photo    string
	Timezone string
	IsAdmin  bool
}

type User struct {
	ID int64
	UserCreate
}

// Membership ties an operator to a role with an access level.
type Membership struct {
	UserID int64
	RoleID int64
	Level  MembershipLevel
}
