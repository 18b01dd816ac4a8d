package main

import "github.com/sahilm/fuzzy"

// closestMatch returns the best fuzzy match for input among candidates,
// or "" when nothing matches. Used for "did you mean" hints on unknown
// names.
func closestMatch(input string, candidates []string) string {
	if input == "" {
		return ""
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
