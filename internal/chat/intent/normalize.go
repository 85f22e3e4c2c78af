package intent

import "strings"

var separators = strings.NewReplacer("-", " ", "_", " ")

// Normalize lowercases s, turns hyphens and underscores into spaces and
// collapses whitespace runs, so "TTMM-Slot", "ttmm_slot" and "ttmm  slot" compare equal.
func Normalize(s string) string {
	s = separators.Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}
