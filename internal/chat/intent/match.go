package intent

import "strings"

// Result is the outcome of matching one message.
type Result struct {
	Intent     string
	Reply      string
	Navigation *Navigation
}

// Match returns the first rule whose keyword occurs in the normalized text,
// or the fallback. It never fails and has no side effects.
func (t Table) Match(text string) Result {
	normalized := Normalize(text)
	for _, r := range t.rules {
		if containsAny(normalized, r.Keywords) {
			return newResult(r)
		}
	}
	return newResult(t.fallback)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func newResult(r Rule) Result {
	res := Result{Intent: r.Name, Reply: r.Reply}
	if r.Navigation != nil {
		nav := *r.Navigation
		res.Navigation = &nav
	}
	return res
}
