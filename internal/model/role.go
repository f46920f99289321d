package model

import "strings"

// Assignment is one persisted (username, role) pair. Usernames are
// stored lowercase; role casing is preserved but compared
// case-insensitively for uniqueness.
type Assignment struct {
	Username string
	Role     string
}

// RoleGroup is one row of the /roles roster: a role with every member
// holding it.
type RoleGroup struct {
	Role    string
	Members []string
}

// NormalizeUsername strips a leading @ and lowercases the rest. An
// empty result means the token was malformed.
func NormalizeUsername(token string) string {
	return strings.ToLower(strings.TrimPrefix(token, "@"))
}
