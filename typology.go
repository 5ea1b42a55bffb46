package profilersdk

// ──────────────────────────────────────────────
// Typology profile — checklist scoring + trait table
// ──────────────────────────────────────────────

// Tone values used across plans and modifiers.
const (
	ToneCalmSupportive      = "calm_supportive"
	TonePositiveEncouraging = "positive_encouraging"
	ToneNeutralBalanced     = "neutral_balanced"
)

// Session length values.
const (
	SessionShort  = "short"
	SessionMedium = "medium"
	SessionLong   = "long"
)

// Info depth values.
const (
	InfoBrief      = "brief"
	InfoStandard   = "standard"
	InfoFullDetail = "full_detail"
)

// ToneModifiers carries style overrides contributed by dominant types.
// Empty fields mean "no opinion" and never override anything.
type ToneModifiers struct {
	Tone          string `json:"tone,omitempty"`
	SessionLength string `json:"session_length,omitempty"`
	InfoDepth     string `json:"info_depth,omitempty"`
	PressureLevel string `json:"pressure_level,omitempty"`
}

// IsZero reports whether no modifier field is set.
func (m ToneModifiers) IsZero() bool {
	return m == ToneModifiers{}
}

// fillFrom copies fields from other into empty fields only. Priority contract
// for co-dominant types: the first dominant wins, the second fills gaps.
func (m *ToneModifiers) fillFrom(other ToneModifiers) {
	if m.Tone == "" {
		m.Tone = other.Tone
	}
	if m.SessionLength == "" {
		m.SessionLength = other.SessionLength
	}
	if m.InfoDepth == "" {
		m.InfoDepth = other.InfoDepth
	}
	if m.PressureLevel == "" {
		m.PressureLevel = other.PressureLevel
	}
}

// TypeTraits is the communication mapping for one accentuation type.
type TypeTraits struct {
	Do        []string
	Avoid     []string
	Modifiers ToneModifiers
}

// typeTraitTable is the single source of truth for typology-derived
// communication directives. Phrase sets are disjoint across types.
var typeTraitTable = map[string]TypeTraits{
	TypeAnxious: {
		Do:        []string{"reassurance", "predictable_structure"},
		Avoid:     []string{"uncertainty", "alarming_language"},
		Modifiers: ToneModifiers{SessionLength: SessionShort, PressureLevel: "minimal"},
	},
	TypeCyclothymic: {
		Do:    []string{"mood_checkin", "flexible_agenda"},
		Avoid: []string{"rigid_expectations"},
	},
	TypeDemonstrative: {
		Do:    []string{"personal_attention", "acknowledge_uniqueness"},
		Avoid: []string{"generic_responses", "being_ignored"},
	},
	TypeDysthymic: {
		Do:        []string{"gentle_encouragement", "patience"},
		Avoid:     []string{"rush", "toxic_positivity"},
		Modifiers: ToneModifiers{Tone: ToneCalmSupportive, SessionLength: SessionShort},
	},
	TypeExcitable: {
		Do:        []string{"calm_even_tone", "clear_limits"},
		Avoid:     []string{"provocation", "sarcasm"},
		Modifiers: ToneModifiers{PressureLevel: "minimal"},
	},
	TypeHyperthymic: {
		Do:        []string{"energetic_engagement", "variety"},
		Avoid:     []string{"monotony", "excessive_caution"},
		Modifiers: ToneModifiers{Tone: TonePositiveEncouraging, SessionLength: SessionLong},
	},
	TypePedantic: {
		Do:        []string{"provide_structure", "complete_information"},
		Avoid:     []string{"vagueness", "sudden_changes"},
		Modifiers: ToneModifiers{SessionLength: SessionShort, InfoDepth: InfoFullDetail},
	},
	TypeSensitive: {
		Do:        []string{"soft_language", "validation"},
		Avoid:     []string{"criticism", "harsh_jokes"},
		Modifiers: ToneModifiers{Tone: ToneCalmSupportive, SessionLength: SessionShort},
	},
	TypeStuck: {
		Do:        []string{"acknowledge_grievances", "consistency"},
		Avoid:     []string{"perceived_injustice", "broken_promises"},
	},
}

// TypologyProfile is the computed typology result.
// DominantTypes is ordered by descending score and holds at most two entries.
type TypologyProfile struct {
	Version       string         `json:"version"`
	Scores        map[string]int `json:"scores"`
	DominantTypes []string       `json:"dominant_types"`
	ToneModifiers ToneModifiers  `json:"tone_modifiers"`
	Do            []string       `json:"do"`
	Avoid         []string       `json:"avoid"`
}

// ComputeTypologyProfile counts checked items per type, selects dominant
// types and assembles the directive lists from the trait table. checked maps
// item id → whether the statement was marked; unmarked items may be omitted.
func ComputeTypologyProfile(checked map[string]bool, items []ChecklistItem, minScore, margin int) (*TypologyProfile, error) {
	typeOf := make(map[string]string, len(items))
	for _, it := range items {
		typeOf[it.ID] = it.Type
	}

	scores := make(map[string]int, len(typeTraitTable))
	for _, name := range TypologyTypes() {
		scores[name] = 0
	}
	for id, isChecked := range checked {
		typeName, ok := typeOf[id]
		if !ok {
			return nil, validationErrorf("typology", "unknown checklist item %q", id)
		}
		if isChecked {
			scores[typeName]++
		}
	}

	dominant := SelectDominant(scores, minScore, margin)

	profile := &TypologyProfile{
		Version:       ProfileSchemaVersion,
		Scores:        scores,
		DominantTypes: dominant,
		Do:            []string{},
		Avoid:         []string{},
	}
	for _, typeName := range dominant {
		traits, ok := typeTraitTable[typeName]
		if !ok {
			continue
		}
		profile.Do = appendUnique(profile.Do, traits.Do...)
		profile.Avoid = appendUnique(profile.Avoid, traits.Avoid...)
		profile.ToneModifiers.fillFrom(traits.Modifiers)
	}
	return profile, nil
}

// MaxSelectionsPerQuestion caps the option-selection form of the typology
// survey: a respondent may mark at most this many options per question.
const MaxSelectionsPerQuestion = 3

// NormalizeSelections converts the option-selection answer form into the
// checklist map. selections maps question id → chosen checklist item ids.
// More than MaxSelectionsPerQuestion choices for one question is a
// ValidationError.
func NormalizeSelections(selections map[string][]string) (map[string]bool, error) {
	checked := make(map[string]bool)
	for questionID, itemIDs := range selections {
		if len(itemIDs) > MaxSelectionsPerQuestion {
			return nil, validationErrorf("typology", "question %s: %d selections exceeds limit of %d",
				questionID, len(itemIDs), MaxSelectionsPerQuestion)
		}
		for _, id := range itemIDs {
			checked[id] = true
		}
	}
	return checked, nil
}
