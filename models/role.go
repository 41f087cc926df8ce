package models

import "strings"

// Role is a job grade. Its rate is the share of earnings paid out as salary.
type Role string

const (
	RoleTrainee    Role = "TRAINEE"
	RoleJuniorMech Role = "JUNIOR MECH"
	RoleMechanic   Role = "MECHANIC"
	RoleSeniorMech Role = "SENIOR MECH"
)

var rolePercentages = map[Role]float64{
	RoleTrainee:    0.20,
	RoleJuniorMech: 0.30,
	RoleMechanic:   0.40,
	RoleSeniorMech: 0.50,
}

// Roles returns the known roles in grade order.
func Roles() []Role {
	return []Role{RoleTrainee, RoleJuniorMech, RoleMechanic, RoleSeniorMech}
}

// ParseRole matches a stored role label case-insensitively.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(s))
	_, ok := rolePercentages[r]
	return r, ok
}

func (r Role) Rate() float64 {
	return rolePercentages[r]
}

// RateFor returns the rate for a free-text role, or 0 if the role is unknown.
func RateFor(s string) float64 {
	r, ok := ParseRole(s)
	if !ok {
		return 0
	}
	return r.Rate()
}
