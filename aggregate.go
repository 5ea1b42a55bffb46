package profilersdk

// ──────────────────────────────────────────────
// Scale Aggregator — weighted, reverse-coded sums per scale
// ──────────────────────────────────────────────

// ReverseAnswer mirrors an answer across the 0-2 domain: 0↔2, 1→1.
// It is an involution: ReverseAnswer(ReverseAnswer(v)) == v.
func ReverseAnswer(v int) int { return 2 - v }

// AggregateAttitude sums weighted, reverse-coded answers into per-scale raw
// scores. answers maps item id → value in {0,1,2} and must cover every item
// exactly. Pure function of (answers, items); a ValidationError means nothing
// was scored.
func AggregateAttitude(answers map[string]int, items []SurveyItem) (map[string]int, error) {
	if len(answers) != len(items) {
		return nil, validationErrorf("attitude", "expected %d answers, got %d", len(items), len(answers))
	}

	known := make(map[string]bool, len(items))
	for _, it := range items {
		known[it.ID] = true
	}
	for id, v := range answers {
		if !known[id] {
			return nil, validationErrorf("attitude", "unknown item id %q", id)
		}
		if v < 0 || v > 2 {
			return nil, validationErrorf("attitude", "item %s: answer %d outside {0,1,2}", id, v)
		}
	}

	sums := make(map[string]int)
	for _, it := range items {
		v, ok := answers[it.ID]
		if !ok {
			return nil, validationErrorf("attitude", "missing answer for item %s", it.ID)
		}
		if it.Reverse {
			v = ReverseAnswer(v)
		}
		sums[it.Scale] += it.EffectiveWeight() * v
	}
	return sums, nil
}
