package auth

import (
	"fmt"
	"strings"
)

// Role is the closed set of user roles. Tokens carry the role as a string
// claim; it is resolved into a Role exactly once, when the token is parsed,
// so handlers never compare raw strings.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

// ParseRole resolves a role claim into a Role. Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleManager:
		return RoleManager, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleReceptionist:
		return RoleReceptionist, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

func (r Role) String() string { return string(r) }
