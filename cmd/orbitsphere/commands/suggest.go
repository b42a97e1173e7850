package commands

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggest returns the candidate closest to input, or "" when nothing is
// close enough to be a plausible typo.
func suggest(input string, candidates []string) string {
	in := strings.ToLower(input)
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(in, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(in)/2) {
		return ""
	}
	return best
}

func unknownName(kind, input string, candidates []string) error {
	if s := suggest(input, candidates); s != "" {
		return fmt.Errorf("unknown %s %q, did you mean %q?", kind, input, s)
	}
	return fmt.Errorf("unknown %s %q (valid: %s)", kind, input, strings.Join(candidates, ", "))
}
