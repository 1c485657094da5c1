package repositories

import "strings"

// toSearchTerm normalizes user-supplied filter text so comparisons are
// case-insensitive on both postgres and sqlite.
func toSearchTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
