package profilersdk

import (
	"fmt"
	"sort"
	"strings"
)

// ──────────────────────────────────────────────
// Summary generator — human-readable text from profiles
// ──────────────────────────────────────────────
//
// Summaries are deterministic and reproducible from the profile alone: same
// profile, same text. They are shown to clinicians next to the raw profile.

// riskTagPhrases is the sentence each risk tag contributes to the attitude
// summary.
var riskTagPhrases = map[string]string{
	RiskAltMedicinePref:   "Leans toward alternative medicine: lead with facts and evidence, never pressure.",
	RiskIgnore:            "Tends to downplay the illness: keep messages short and concrete.",
	RiskAnxiety:           "Elevated illness anxiety: slow the pace and reassure.",
	RiskAvoidanceWork:     "Escapes into work: encourage gradual re-engagement with treatment.",
	RiskSecondaryGainFlag: "Signs of secondary gain: steer attention to life outside the illness.",
}

// commFlagClauses is the short clause each communication flag contributes.
var commFlagClauses = map[string]string{
	FlagUseFactsNoPressure:  "facts without pressure",
	FlagShortClearMessages:  "short clear messages",
	FlagSlowPace:            "unhurried pace",
	FlagPraiseSpecific:      "specific praise",
	FlagFocusOutsideIllness: "focus outside the illness",
}

// typePhrases is the sentence each dominant type contributes to the typology
// summary.
var typePhrases = map[string]string{
	TypeAnxious:       "Needs predictability and reassurance; avoid uncertainty.",
	TypeCyclothymic:   "Mood-dependent engagement; check in and stay flexible.",
	TypeDemonstrative: "Responds to personal attention; avoid generic replies.",
	TypeDysthymic:     "Low energy baseline; short sessions, gentle encouragement.",
	TypeExcitable:     "Quick to flare; keep an even tone and clear limits.",
	TypeHyperthymic:   "High energy; vary the material and keep momentum.",
	TypePedantic:      "Needs structure and complete information; avoid vagueness and sudden changes.",
	TypeSensitive:     "Easily hurt; soft language, no criticism.",
	TypeStuck:         "Holds on to grievances; stay consistent and fair.",
}

// attitudeScaleOrder fixes the order scales appear in the summary.
var attitudeScaleOrder = []string{
	ScaleAnxiety, ScaleIgnore, ScaleAltMed,
	ScaleWorkEscape, ScaleLowSelfesteem, ScaleSecondaryGain,
}

// AttitudeSummary renders a ScaleProfile as deterministic text.
func AttitudeSummary(p *ScaleProfile) string {
	var parts []string
	for _, scale := range orderedScales(p.Scales) {
		parts = append(parts, fmt.Sprintf("%s %s", scale, p.Scales[scale].Level))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Attitude profile — %s.", strings.Join(parts, ", "))

	for _, tag := range p.RiskTags {
		if phrase, ok := riskTagPhrases[tag]; ok {
			b.WriteString(" " + phrase)
		}
	}
	var clauses []string
	for _, flag := range p.CommFlags {
		if clause, ok := commFlagClauses[flag]; ok {
			clauses = append(clauses, clause)
		}
	}
	if len(clauses) > 0 {
		fmt.Fprintf(&b, " Approach: %s.", strings.Join(clauses, ", "))
	}
	return b.String()
}

// TypologySummary renders a TypologyProfile as deterministic text.
func TypologySummary(p *TypologyProfile) string {
	if len(p.DominantTypes) == 0 {
		return "Typology profile — no pronounced accentuation."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Typology profile — dominant: %s.", strings.Join(p.DominantTypes, ", "))
	for _, typeName := range p.DominantTypes {
		if phrase, ok := typePhrases[typeName]; ok {
			b.WriteString(" " + phrase)
		}
	}
	return b.String()
}

// ValuesSummary renders a ValuesProfile as deterministic text.
func ValuesSummary(p *ValuesProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Values profile — style %s, life satisfaction %d/100.",
		p.CommunicationGuidelines.CommunicationStyle, p.ValueIndices[IndexLifeSatisfaction])
	if len(p.CommunicationGuidelines.Motivators) > 0 {
		fmt.Fprintf(&b, " Motivators: %s.", strings.Join(p.CommunicationGuidelines.Motivators, ", "))
	}
	if len(p.CommunicationGuidelines.AvoidTopics) > 0 {
		fmt.Fprintf(&b, " Avoid topics: %s.", strings.Join(p.CommunicationGuidelines.AvoidTopics, ", "))
	}
	return b.String()
}

// orderedScales returns scale names in canonical order first, then any extra
// scales sorted lexically. Extra scales come from external configuration.
func orderedScales(scales map[string]ScaleScore) []string {
	inCanonical := make(map[string]bool, len(attitudeScaleOrder))
	var ordered []string
	for _, scale := range attitudeScaleOrder {
		inCanonical[scale] = true
		if _, ok := scales[scale]; ok {
			ordered = append(ordered, scale)
		}
	}
	var extra []string
	for scale := range scales {
		if !inCanonical[scale] {
			extra = append(extra, scale)
		}
	}
	sort.Strings(extra)
	return append(ordered, extra...)
}
