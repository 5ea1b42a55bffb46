package profilersdk

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Plan Merger (PIB builder) — single-pass, order-sensitive merge
// ──────────────────────────────────────────────

// CommunicationPlan is the merged directive set steering the style of the
// downstream conversational responder. List fields are deduplicated,
// first-seen order; callers must treat them as sets.
type CommunicationPlan struct {
	Tone             string   `json:"tone"`
	SessionLength    string   `json:"session_length"`
	Do               []string `json:"do"`
	Avoid            []string `json:"avoid"`
	Seek             []string `json:"seek"`
	EducationalFocus []string `json:"educational_focus"`
	Flags            []string `json:"flags"`
}

// PIB bundles the input profiles with the merged communication plan.
type PIB struct {
	ID                string             `json:"id,omitempty"`
	Attitude          *ScaleProfile      `json:"attitude,omitempty"`
	Typology          *TypologyProfile   `json:"typology,omitempty"`
	Values            *ValuesProfile     `json:"values,omitempty"`
	Demographics      map[string]any     `json:"demographics,omitempty"`
	CommunicationPlan *CommunicationPlan `json:"communication_plan"`
}

// planEffect is what one risk tag or communication flag contributes.
type planEffect struct {
	Do               []string
	Avoid            []string
	Seek             []string
	EducationalFocus []string
}

// riskTagEffects is the lookup table applied in merge step 2.
var riskTagEffects = map[string]planEffect{
	RiskAltMedicinePref: {
		Avoid:            []string{"ridiculing_alternatives"},
		Seek:             []string{"common_ground"},
		EducationalFocus: []string{"evidence_based_treatment"},
	},
	RiskIgnore: {
		Do:               []string{"concrete_examples"},
		EducationalFocus: []string{"illness_consequences"},
	},
	RiskAnxiety: {
		Do:    []string{"reassurance"},
		Avoid: []string{"alarming_statistics"},
		Seek:  []string{"calming_context"},
	},
	RiskAvoidanceWork: {
		Seek:             []string{"gradual_reengagement"},
		EducationalFocus: []string{"work_life_balance"},
	},
	RiskSecondaryGainFlag: {
		Avoid: []string{"reinforcing_sick_role"},
		Seek:  []string{"life_outside_illness"},
	},
}

// commFlagEffects is the lookup table applied in merge step 3. Flags and risk
// tags are independent namespaces that may feed the same output fields.
var commFlagEffects = map[string]planEffect{
	FlagUseFactsNoPressure: {
		Do:    []string{"cite_evidence", "offer_choices"},
		Avoid: []string{"pressure", "ultimatums"},
	},
	FlagShortClearMessages: {
		Do:    []string{"short_sentences", "one_topic_per_message"},
		Avoid: []string{"long_explanations"},
	},
	FlagSlowPace: {
		Do:    []string{"gentle_pacing", "frequent_checkins"},
		Avoid: []string{"rush"},
	},
	FlagPraiseSpecific: {
		Do:    []string{"specific_praise", "acknowledge_effort"},
		Avoid: []string{"generic_compliments"},
	},
	FlagFocusOutsideIllness: {
		Do:    []string{"explore_interests"},
		Avoid: []string{"illness_only_smalltalk"},
	},
}

// styleToneOverride maps a values communication style to the plan tone it
// forces, plus the seek entries it appends (merge step 6).
var styleToneOverride = map[string]struct {
	Tone string
	Seek []string
}{
	StyleOptimistic: {Tone: TonePositiveEncouraging, Seek: []string{"positive_framing", "achievement_recognition"}},
	StyleSupportive: {Tone: ToneCalmSupportive, Seek: []string{"emotional_support", "reassurance"}},
	StyleBalanced:   {Tone: ToneNeutralBalanced},
}

// DefaultPlan returns the merge starting point: calm supportive tone, medium
// sessions, empty directive lists.
func DefaultPlan() *CommunicationPlan {
	return &CommunicationPlan{
		Tone:             ToneCalmSupportive,
		SessionLength:    SessionMedium,
		Do:               []string{},
		Avoid:            []string{},
		Seek:             []string{},
		EducationalFocus: []string{},
		Flags:            []string{},
	}
}

// MergePlan combines any subset of the three profiles into one communication
// plan. Steps run in a fixed sequence; later steps may override tone and
// session_length, while list fields only accumulate and deduplicate, so
// typology and values signals can refine but never erase attitude-derived
// avoid entries. Absent profiles are silent no-ops; a present but malformed
// profile yields a ProfileShapeError.
func MergePlan(attitude *ScaleProfile, typology *TypologyProfile, values *ValuesProfile) (*CommunicationPlan, error) {
	if err := checkProfileShapes(attitude, typology, values); err != nil {
		return nil, err
	}

	plan := DefaultPlan()

	// Step 2: attitude risk tags.
	if attitude != nil {
		for _, tag := range attitude.RiskTags {
			applyEffect(plan, riskTagEffects[tag])
		}
		// Step 3: attitude communication flags.
		for _, flag := range attitude.CommFlags {
			applyEffect(plan, commFlagEffects[flag])
			plan.Flags = append(plan.Flags, flag)
		}
	}

	// Step 4: typology modifiers override tone/session, lists append.
	if typology != nil {
		if typology.ToneModifiers.Tone != "" {
			plan.Tone = typology.ToneModifiers.Tone
		}
		if typology.ToneModifiers.SessionLength != "" {
			plan.SessionLength = typology.ToneModifiers.SessionLength
		}
		plan.Do = append(plan.Do, typology.Do...)
		plan.Avoid = append(plan.Avoid, typology.Avoid...)
	}

	// Step 5: attitude/typology co-occurrence rules.
	if attitude != nil && typology != nil {
		if hasAny(typology.DominantTypes, TypeSensitive, TypeDysthymic) {
			plan.Tone = ToneCalmSupportive
			plan.SessionLength = SessionShort
			plan.Avoid = append(plan.Avoid, "rush", "pressure")
		}
		if hasAny(typology.DominantTypes, TypePedantic) {
			plan.Seek = append(plan.Seek, "full_info", "structure")
		}
	}

	// Step 6: values communication style.
	if values != nil {
		if override, ok := styleToneOverride[values.CommunicationGuidelines.CommunicationStyle]; ok {
			plan.Tone = override.Tone
			plan.Seek = append(plan.Seek, override.Seek...)
		}

		// Step 7: values index thresholds.
		idx := values.ValueIndices
		if idx[IndexLifeSatisfaction] < 30 {
			plan.Seek = append(plan.Seek, "emotional_support", "hope_building")
			plan.Avoid = append(plan.Avoid, "pessimistic_language")
		}
		if idx[IndexFutureOrientation] < 30 {
			plan.Seek = append(plan.Seek, "future_planning", "goal_setting")
			plan.Avoid = append(plan.Avoid, "short_term_focus")
		}
		if idx[IndexTreatmentAttitude] < 30 {
			plan.Seek = append(plan.Seek, "trust_building", "gentle_approach")
			plan.Avoid = append(plan.Avoid, "pressure", "authoritarian_tone")
		}
		if idx[IndexFamilyImportance] > 70 {
			plan.Seek = append(plan.Seek, "family_involvement", "family_support")
		}
		if idx[IndexHealthPriority] > 70 {
			plan.Seek = append(plan.Seek, "health_education", "preventive_care")
		}
		if idx[IndexSocialOrientation] < 30 {
			plan.Seek = append(plan.Seek, "individual_approach", "privacy_respect")
			plan.Avoid = append(plan.Avoid, "group_pressure", "social_expectations")
		}
	}

	// Step 8: deduplicate, preserving first-seen order.
	plan.Do = dedupe(plan.Do)
	plan.Avoid = dedupe(plan.Avoid)
	plan.Seek = dedupe(plan.Seek)
	plan.EducationalFocus = dedupe(plan.EducationalFocus)
	plan.Flags = dedupe(plan.Flags)
	return plan, nil
}

// BuildPIB merges the profiles and bundles them with pass-through
// demographics. The profiles are referenced, not copied; none is mutated.
func BuildPIB(attitude *ScaleProfile, typology *TypologyProfile, values *ValuesProfile, demographics map[string]any) (*PIB, error) {
	plan, err := MergePlan(attitude, typology, values)
	if err != nil {
		return nil, err
	}
	return &PIB{
		Attitude:          attitude,
		Typology:          typology,
		Values:            values,
		Demographics:      demographics,
		CommunicationPlan: plan,
	}, nil
}

func checkProfileShapes(attitude *ScaleProfile, typology *TypologyProfile, values *ValuesProfile) error {
	if attitude != nil && attitude.Scales == nil {
		return &ProfileShapeError{Profile: "attitude", Field: "scales"}
	}
	if typology != nil && typology.Scores == nil {
		return &ProfileShapeError{Profile: "typology", Field: "scores"}
	}
	if values != nil {
		if values.ValueIndices == nil {
			return &ProfileShapeError{Profile: "values", Field: "value_indices"}
		}
		if values.CommunicationGuidelines.CommunicationStyle == "" {
			return &ProfileShapeError{Profile: "values", Field: "communication_guidelines.communication_style"}
		}
	}
	return nil
}

func applyEffect(plan *CommunicationPlan, effect planEffect) {
	plan.Do = append(plan.Do, effect.Do...)
	plan.Avoid = append(plan.Avoid, effect.Avoid...)
	plan.Seek = append(plan.Seek, effect.Seek...)
	plan.EducationalFocus = append(plan.EducationalFocus, effect.EducationalFocus...)
}

func hasAny(list []string, values ...string) bool {
	for _, v := range list {
		for _, want := range values {
			if v == want {
				return true
			}
		}
	}
	return false
}

func dedupe(list []string) []string {
	return appendUnique([]string{}, list...)
}

// FormatForPrompt renders the plan as a style-constraint block for injection
// into the responder's system prompt. The block steers style, never content.
func (p *CommunicationPlan) FormatForPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[communication plan] tone=%s; session_length=%s", p.Tone, p.SessionLength)
	if len(p.Do) > 0 {
		fmt.Fprintf(&b, "\ndo: %s", strings.Join(p.Do, ", "))
	}
	if len(p.Avoid) > 0 {
		fmt.Fprintf(&b, "\navoid: %s", strings.Join(p.Avoid, ", "))
	}
	if len(p.Seek) > 0 {
		fmt.Fprintf(&b, "\nseek: %s", strings.Join(p.Seek, ", "))
	}
	if len(p.EducationalFocus) > 0 {
		fmt.Fprintf(&b, "\neducational focus: %s", strings.Join(p.EducationalFocus, ", "))
	}
	return b.String()
}
