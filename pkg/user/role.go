package user

import "strings"

// Role is the access level of a user in a tree. It is stored as the
// "canedit" tree setting.
type Role string

const (
	RoleNone   Role = "none"
	RoleAccess Role = "access" // member
	RoleEdit   Role = "edit"   // editor
	RoleAccept Role = "accept" // moderator
	RoleAdmin  Role = "admin"  // manager
)

var roleRank = map[Role]int{
	RoleNone:   0,
	RoleAccess: 1,
	RoleEdit:   2,
	RoleAccept: 3,
	RoleAdmin:  4,
}

// ParseRole converts a stored value to a Role. Empty and unknown values
// are RoleNone; ok is false only for unknown values.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoleNone, true
	}
	r := Role(s)
	if _, ok := roleRank[r]; ok {
		return r, true
	}
	return RoleNone, false
}

// AtLeast is true when r grants everything o grants.
func (r Role) AtLeast(o Role) bool {
	return roleRank[r] >= roleRank[o]
}

// Roles lists all roles from the weakest to the strongest.
func Roles() []Role {
	return []Role{RoleNone, RoleAccess, RoleEdit, RoleAccept, RoleAdmin}
}
