package domain

import "fmt"

// Role governs which surfaces of the site a signed-in principal can reach.
type Role string

const (
	RoleAudience Role = "audience"
	RoleWriter   Role = "writer"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a stored or submitted role string. Anything outside the
// closed set is rejected rather than trusted.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAudience, RoleWriter, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role is one of the three known variants.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
