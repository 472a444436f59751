package repository

import "strings"

// NameKey folds a user or university name for case-insensitive uniqueness and lookup,
// including non-ASCII letters.
func NameKey(name string) string {
	return strings.ToLower(name)
}
