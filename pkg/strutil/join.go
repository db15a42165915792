package strutil

import "strings"

// JoinStrings joins items with a single space. Items are used as-is.
func JoinStrings(items []string) string {
	return strings.Join(items, " ")
}
