package profilersdk

import "sort"

// ──────────────────────────────────────────────
// Dominance Selector — graded typology classification
// ──────────────────────────────────────────────

// Default selection parameters for the typology checklist.
const (
	DefaultMinScore = 5
	DefaultMargin   = 2
)

// SelectDominant ranks type scores and picks up to two dominant types.
//
// Types are sorted by descending score; exact ties break by lexical order of
// the type id, so the result is deterministic regardless of map iteration.
// The top type is dominant only if its score clears minScore. The runner-up
// joins as a co-dominant when the gap to the top score is below margin and
// its own score is at least minScore-1. An empty result means no
// accentuation cleared the floor.
func SelectDominant(scores map[string]int, minScore, margin int) []string {
	if len(scores) == 0 {
		return []string{}
	}

	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if scores[names[i]] != scores[names[j]] {
			return scores[names[i]] > scores[names[j]]
		}
		return names[i] < names[j]
	})

	dominant := []string{}
	top := names[0]
	if scores[top] < minScore {
		return dominant
	}
	dominant = append(dominant, top)

	if len(names) > 1 {
		second := names[1]
		if scores[top]-scores[second] < margin && scores[second] >= minScore-1 {
			dominant = append(dominant, second)
		}
	}
	return dominant
}
