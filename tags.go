package profilersdk

// ──────────────────────────────────────────────
// Risk/Communication Tag Deriver — attitude rule table
// ──────────────────────────────────────────────

// Risk tags.
const (
	RiskAltMedicinePref   = "alt_medicine_pref"
	RiskIgnore            = "ignore_risk"
	RiskAnxiety           = "anxiety_flag"
	RiskAvoidanceWork     = "avoidance_work"
	RiskSecondaryGainFlag = "secondary_gain_flag"
)

// Communication flags.
const (
	FlagUseFactsNoPressure   = "use_facts_no_pressure"
	FlagShortClearMessages   = "short_clear_messages"
	FlagSlowPace             = "slow_pace"
	FlagPraiseSpecific       = "praise_specific"
	FlagFocusOutsideIllness  = "focus_outside_illness"
)

// attitudeRule maps a scale at given levels to a risk tag and/or a
// communication flag. Either tag may be empty.
type attitudeRule struct {
	Scale    string
	Levels   []Level
	RiskTag  string
	CommFlag string
}

// attitudeRules is the single source of behavioral truth for the attitude
// survey. Rules fire independently; outputs are deduplicated.
var attitudeRules = []attitudeRule{
	{Scale: ScaleAltMed, Levels: []Level{LevelHigh}, RiskTag: RiskAltMedicinePref, CommFlag: FlagUseFactsNoPressure},
	{Scale: ScaleIgnore, Levels: []Level{LevelMed, LevelHigh}, RiskTag: RiskIgnore, CommFlag: FlagShortClearMessages},
	{Scale: ScaleAnxiety, Levels: []Level{LevelMed, LevelHigh}, RiskTag: RiskAnxiety, CommFlag: FlagSlowPace},
	{Scale: ScaleWorkEscape, Levels: []Level{LevelHigh}, RiskTag: RiskAvoidanceWork},
	{Scale: ScaleLowSelfesteem, Levels: []Level{LevelMed, LevelHigh}, CommFlag: FlagPraiseSpecific},
	{Scale: ScaleSecondaryGain, Levels: []Level{LevelMed, LevelHigh}, RiskTag: RiskSecondaryGainFlag, CommFlag: FlagFocusOutsideIllness},
}

// DeriveAttitudeTags walks the rule table against classified scales and
// returns deduplicated risk tags and communication flags in rule order.
// Scales absent from the profile never fire a rule.
func DeriveAttitudeTags(scales map[string]ScaleScore) (riskTags, commFlags []string) {
	riskTags = []string{}
	commFlags = []string{}
	for _, rule := range attitudeRules {
		score, ok := scales[rule.Scale]
		if !ok {
			continue
		}
		matched := false
		for _, lvl := range rule.Levels {
			if score.Level == lvl {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if rule.RiskTag != "" {
			riskTags = appendUnique(riskTags, rule.RiskTag)
		}
		if rule.CommFlag != "" {
			commFlags = appendUnique(commFlags, rule.CommFlag)
		}
	}
	return riskTags, commFlags
}

// appendUnique appends values not already present, preserving first-seen order.
func appendUnique(list []string, values ...string) []string {
	seen := make(map[string]bool, len(list))
	for _, v := range list {
		seen[v] = true
	}
	for _, v := range values {
		if !seen[v] {
			list = append(list, v)
			seen[v] = true
		}
	}
	return list
}
