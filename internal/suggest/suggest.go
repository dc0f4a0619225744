// Package suggest proposes known names close to a mistyped one.
package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns up to limit candidates that are within edit distance of
// target, nearest first. Matching ignores case. Ties keep candidate order.
func Closest(target string, candidates []string, limit int) []string {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" || limit <= 0 {
		return nil
	}
	threshold := max(2, len(target)/3)

	type match struct {
		name     string
		distance int
	}
	var matches []match
	for _, candidate := range candidates {
		lowered := strings.ToLower(candidate)
		d := levenshtein.ComputeDistance(target, lowered)
		if strings.HasPrefix(lowered, target) {
			d = min(d, 1)
		}
		if d <= threshold {
			matches = append(matches, match{name: candidate, distance: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})
	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.name)
	}
	return out
}

// Phrase renders suggestions as `did you mean "A" or "B"?`, or "" when empty.
func Phrase(names []string) string {
	if len(names) == 0 {
		return ""
	}
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = `"` + name + `"`
	}
	return "did you mean " + strings.Join(quoted, " or ") + "?"
}
