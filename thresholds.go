package profilersdk

import (
	"fmt"
	"sort"
)

// ──────────────────────────────────────────────
// Level Classifier — raw scale score → low/med/high
// ──────────────────────────────────────────────

// Level is the classified bucket of a raw scale score.
type Level string

const (
	LevelLow  Level = "low"
	LevelMed  Level = "med"
	LevelHigh Level = "high"
)

// DefaultUnknownScaleLevel is returned when no threshold entry exists for a
// scale. A neutral midpoint keeps classification total when new scales show
// up in external configuration before the threshold table catches up.
const DefaultUnknownScaleLevel = LevelMed

// ParseLevel normalizes an external level string. "medium" is accepted as an
// alias of "med".
func ParseLevel(s string) (Level, error) {
	switch s {
	case "low":
		return LevelLow, nil
	case "med", "medium":
		return LevelMed, nil
	case "high":
		return LevelHigh, nil
	}
	return "", fmt.Errorf("unknown level %q", s)
}

// Range is an inclusive integer range.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether v falls inside the range.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// LevelRanges holds the three bands for one scale.
// Bands must be ordered low < med < high and must not overlap.
type LevelRanges struct {
	Low  Range `json:"low" yaml:"low"`
	Med  Range `json:"med" yaml:"med"`
	High Range `json:"high" yaml:"high"`
}

// ThresholdTable maps a scale name to its level bands.
type ThresholdTable map[string]LevelRanges

// Classify maps a raw sum to a level. Membership is tested high first, then
// med, and anything else falls through to low, so classification is total:
// every integer maps to exactly one level. A scale with no entry degrades to
// DefaultUnknownScaleLevel instead of erroring.
func (t ThresholdTable) Classify(scale string, raw int) Level {
	ranges, ok := t[scale]
	if !ok {
		return DefaultUnknownScaleLevel
	}
	switch {
	case ranges.High.Contains(raw):
		return LevelHigh
	case ranges.Med.Contains(raw):
		return LevelMed
	default:
		return LevelLow
	}
}

// Validate checks that every entry has ordered, non-overlapping bands.
func (t ThresholdTable) Validate() error {
	scales := make([]string, 0, len(t))
	for s := range t {
		scales = append(scales, s)
	}
	sort.Strings(scales)
	for _, scale := range scales {
		r := t[scale]
		for _, band := range []Range{r.Low, r.Med, r.High} {
			if band.Min > band.Max {
				return fmt.Errorf("scale %s: inverted range [%d,%d]", scale, band.Min, band.Max)
			}
		}
		if r.Low.Max >= r.Med.Min || r.Med.Max >= r.High.Min {
			return fmt.Errorf("scale %s: bands overlap or are out of order", scale)
		}
	}
	return nil
}

// DefaultThresholds returns the built-in threshold table for the attitude
// survey. Bands are calibrated to the built-in item set: six scales of 6-7
// items each, answers 0-2, low_selfesteem carrying two negative-weight items
// so its raw sum ranges over [-4,10].
func DefaultThresholds() ThresholdTable {
	return ThresholdTable{
		ScaleAnxiety:       {Low: Range{0, 4}, Med: Range{5, 9}, High: Range{10, 14}},
		ScaleIgnore:        {Low: Range{0, 4}, Med: Range{5, 9}, High: Range{10, 14}},
		ScaleAltMed:        {Low: Range{0, 4}, Med: Range{5, 9}, High: Range{10, 14}},
		ScaleWorkEscape:    {Low: Range{0, 4}, Med: Range{5, 9}, High: Range{10, 14}},
		ScaleSecondaryGain: {Low: Range{0, 3}, Med: Range{4, 7}, High: Range{8, 12}},
		ScaleLowSelfesteem: {Low: Range{-4, 3}, Med: Range{4, 6}, High: Range{7, 10}},
	}
}
