package profilersdk

import "math"

// ──────────────────────────────────────────────
// Values Index Calculator — color associations + ranking
// ──────────────────────────────────────────────

// Value index names.
const (
	IndexLifeSatisfaction  = "life_satisfaction"
	IndexFutureOrientation = "future_orientation"
	IndexFamilyImportance  = "family_importance"
	IndexHealthPriority    = "health_priority"
	IndexSocialOrientation = "social_orientation"
	IndexTreatmentAttitude = "treatment_attitude"
)

// Communication styles derived from the positive-color ratio.
const (
	StyleOptimistic = "optimistic"
	StyleSupportive = "supportive"
	StyleBalanced   = "balanced"
)

// MidpointIndex is the neutral default for a rank-derived index when none of
// its concepts were colored. Absence of signal means "no information", never
// a low score.
const MidpointIndex = 50

// indexConcepts associates each rank-derived index with the concepts whose
// assigned colors drive it.
var indexConcepts = map[string][]string{
	IndexFutureOrientation: {ConceptFuture},
	IndexFamilyImportance:  {ConceptFamily, ConceptHome},
	IndexHealthPriority:    {ConceptHealth},
	IndexSocialOrientation: {ConceptFriends, ConceptWork},
	IndexTreatmentAttitude: {ConceptTreatment, ConceptDoctor},
}

// CommunicationGuidelines summarizes the values survey for the plan merger.
type CommunicationGuidelines struct {
	CommunicationStyle string   `json:"communication_style"`
	Motivators         []string `json:"motivators"`
	AvoidTopics        []string `json:"avoid_topics"`
}

// ValuesProfile is the computed values/color-association result.
type ValuesProfile struct {
	Version                 string                  `json:"version"`
	ColorAssociations       map[string]string       `json:"color_associations"`
	ValueIndices            map[string]int          `json:"value_indices"`
	CommunicationGuidelines CommunicationGuidelines `json:"communication_guidelines"`
}

// ComputeValuesProfile derives normalized 0-100 indices from a
// concept→color association map and a full preference ranking of the palette.
//
// The ranking must be a permutation of the 11 palette colors, most preferred
// first. Associations may be sparse; every index stays well-defined.
func ComputeValuesProfile(associations map[string]string, ranking []string) (*ValuesProfile, error) {
	if err := validateValuesAnswers(associations, ranking); err != nil {
		return nil, err
	}

	// Rank position per color, 1 = most preferred.
	rankOf := make(map[string]int, len(ranking))
	for i, color := range ranking {
		rankOf[color] = i + 1
	}

	positive := 0
	for _, color := range associations {
		if positiveColors[color] {
			positive++
		}
	}

	indices := map[string]int{}
	if len(associations) == 0 {
		indices[IndexLifeSatisfaction] = MidpointIndex
	} else {
		indices[IndexLifeSatisfaction] = int(math.Round(float64(positive) / float64(len(associations)) * 100))
	}

	paletteSize := len(ranking)
	for indexName, concepts := range indexConcepts {
		total := 0.0
		found := 0
		for _, concept := range concepts {
			color, ok := associations[concept]
			if !ok {
				continue
			}
			pos := rankOf[color]
			total += float64(paletteSize-pos) / float64(paletteSize-1) * 100
			found++
		}
		if found == 0 {
			indices[indexName] = MidpointIndex
			continue
		}
		indices[indexName] = int(math.Round(total / float64(found)))
	}

	style := StyleBalanced
	if len(associations) > 0 {
		ratio := float64(positive) / float64(len(associations))
		switch {
		case ratio > 0.6:
			style = StyleOptimistic
		case ratio < 0.4:
			style = StyleSupportive
		}
	}

	return &ValuesProfile{
		Version:           ProfileSchemaVersion,
		ColorAssociations: copyStringMap(associations),
		ValueIndices:      indices,
		CommunicationGuidelines: CommunicationGuidelines{
			CommunicationStyle: style,
			Motivators:         deriveMotivators(indices),
			AvoidTopics:        deriveAvoidTopics(indices),
		},
	}, nil
}

func validateValuesAnswers(associations map[string]string, ranking []string) error {
	palette := Palette()
	if len(ranking) != len(palette) {
		return validationErrorf("values", "ranking must contain all %d colors, got %d", len(palette), len(ranking))
	}
	validColor := make(map[string]bool, len(palette))
	for _, c := range palette {
		validColor[c] = true
	}
	seen := make(map[string]bool, len(ranking))
	for _, c := range ranking {
		if !validColor[c] {
			return validationErrorf("values", "unknown color %q in ranking", c)
		}
		if seen[c] {
			return validationErrorf("values", "color %q appears twice in ranking", c)
		}
		seen[c] = true
	}

	validConcept := make(map[string]bool)
	for _, c := range ValuesConcepts() {
		validConcept[c] = true
	}
	for concept, color := range associations {
		if !validConcept[concept] {
			return validationErrorf("values", "unknown concept %q", concept)
		}
		if !validColor[color] {
			return validationErrorf("values", "concept %s: unknown color %q", concept, color)
		}
	}
	return nil
}

// motivatorRules and avoidTopicRules translate index extremes into guideline
// entries. Slice order keeps the output deterministic.
var motivatorRules = []struct {
	Index     string
	Motivator string
}{
	{IndexFamilyImportance, "family_wellbeing"},
	{IndexHealthPriority, "health_improvement"},
	{IndexFutureOrientation, "future_goals"},
	{IndexSocialOrientation, "social_connection"},
	{IndexLifeSatisfaction, "positive_outlook"},
}

var avoidTopicRules = []struct {
	Index string
	Topic string
}{
	{IndexLifeSatisfaction, "dwelling_on_losses"},
	{IndexTreatmentAttitude, "treatment_ultimatums"},
	{IndexSocialOrientation, "group_activities"},
	{IndexFutureOrientation, "distant_abstract_plans"},
}

func deriveMotivators(indices map[string]int) []string {
	motivators := []string{}
	for _, rule := range motivatorRules {
		if indices[rule.Index] > 70 {
			motivators = appendUnique(motivators, rule.Motivator)
		}
	}
	return motivators
}

func deriveAvoidTopics(indices map[string]int) []string {
	topics := []string{}
	for _, rule := range avoidTopicRules {
		if indices[rule.Index] < 30 {
			topics = appendUnique(topics, rule.Topic)
		}
	}
	return topics
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
