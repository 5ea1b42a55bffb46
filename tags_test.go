package profilersdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scalesAt builds a profile map with every default scale at low, then raises
// the given scales to the given level.
func scalesAt(level Level, raised ...string) map[string]ScaleScore {
	scales := map[string]ScaleScore{
		ScaleAnxiety:       {Level: LevelLow},
		ScaleIgnore:        {Level: LevelLow},
		ScaleAltMed:        {Level: LevelLow},
		ScaleWorkEscape:    {Level: LevelLow},
		ScaleLowSelfesteem: {Level: LevelLow},
		ScaleSecondaryGain: {Level: LevelLow},
	}
	for _, s := range raised {
		scales[s] = ScaleScore{Level: level}
	}
	return scales
}

func TestDeriveAttitudeTags(t *testing.T) {
	cases := []struct {
		name      string
		scales    map[string]ScaleScore
		wantRisk  []string
		wantFlags []string
	}{
		{
			name:      "all low fires nothing",
			scales:    scalesAt(LevelLow),
			wantRisk:  []string{},
			wantFlags: []string{},
		},
		{
			name:      "alt_med high",
			scales:    scalesAt(LevelHigh, ScaleAltMed),
			wantRisk:  []string{RiskAltMedicinePref},
			wantFlags: []string{FlagUseFactsNoPressure},
		},
		{
			name:      "alt_med med stays silent",
			scales:    scalesAt(LevelMed, ScaleAltMed),
			wantRisk:  []string{},
			wantFlags: []string{},
		},
		{
			name:      "ignore med",
			scales:    scalesAt(LevelMed, ScaleIgnore),
			wantRisk:  []string{RiskIgnore},
			wantFlags: []string{FlagShortClearMessages},
		},
		{
			name:      "anxiety high",
			scales:    scalesAt(LevelHigh, ScaleAnxiety),
			wantRisk:  []string{RiskAnxiety},
			wantFlags: []string{FlagSlowPace},
		},
		{
			name:      "work_escape high has no flag",
			scales:    scalesAt(LevelHigh, ScaleWorkEscape),
			wantRisk:  []string{RiskAvoidanceWork},
			wantFlags: []string{},
		},
		{
			name:      "work_escape med stays silent",
			scales:    scalesAt(LevelMed, ScaleWorkEscape),
			wantRisk:  []string{},
			wantFlags: []string{},
		},
		{
			name:      "low_selfesteem med has no risk tag",
			scales:    scalesAt(LevelMed, ScaleLowSelfesteem),
			wantRisk:  []string{},
			wantFlags: []string{FlagPraiseSpecific},
		},
		{
			name:      "secondary_gain high",
			scales:    scalesAt(LevelHigh, ScaleSecondaryGain),
			wantRisk:  []string{RiskSecondaryGainFlag},
			wantFlags: []string{FlagFocusOutsideIllness},
		},
		{
			name:     "multiple scales fire in rule order",
			scales:   scalesAt(LevelHigh, ScaleAltMed, ScaleAnxiety, ScaleIgnore),
			wantRisk: []string{RiskAltMedicinePref, RiskIgnore, RiskAnxiety},
			wantFlags: []string{
				FlagUseFactsNoPressure, FlagShortClearMessages, FlagSlowPace,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			risk, flags := DeriveAttitudeTags(tc.scales)
			assert.Equal(t, tc.wantRisk, risk)
			assert.Equal(t, tc.wantFlags, flags)
		})
	}
}

func TestDeriveAttitudeTagsMissingScale(t *testing.T) {
	// A profile lacking a scale entry fires no rule for it.
	risk, flags := DeriveAttitudeTags(map[string]ScaleScore{
		ScaleAnxiety: {Level: LevelHigh},
	})
	assert.Equal(t, []string{RiskAnxiety}, risk)
	assert.Equal(t, []string{FlagSlowPace}, flags)
}

func TestAppendUnique(t *testing.T) {
	got := appendUnique([]string{"a", "b"}, "b", "c", "a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
