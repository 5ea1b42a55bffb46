package profilersdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeValuesProfileOptimistic(t *testing.T) {
	// 8 of 11 concepts get a positive color: 8/11 rounds to 73 and the
	// positive ratio 0.727 crosses the optimistic threshold.
	associations := map[string]string{
		ConceptMyself:    ColorGreen,
		ConceptHealth:    ColorGreen,
		ConceptTreatment: ColorGreen,
		ConceptDoctor:    ColorGreen,
		ConceptFuture:    ColorGreen,
		ConceptPast:      ColorGreen,
		ConceptFamily:    ColorGreen,
		ConceptHome:      ColorGreen,
		ConceptIllness:   ColorBlack,
		ConceptWork:      ColorBlack,
		ConceptFriends:   ColorBlack,
	}

	profile, err := ComputeValuesProfile(associations, Palette())
	require.NoError(t, err)

	assert.Equal(t, 73, profile.ValueIndices[IndexLifeSatisfaction])
	assert.Equal(t, StyleOptimistic, profile.CommunicationGuidelines.CommunicationStyle)

	// Green is ranked first, so green-driven indices hit 100; black sits
	// sixth, so the all-black social index lands on 50.
	assert.Equal(t, 100, profile.ValueIndices[IndexFutureOrientation])
	assert.Equal(t, 100, profile.ValueIndices[IndexFamilyImportance])
	assert.Equal(t, 100, profile.ValueIndices[IndexHealthPriority])
	assert.Equal(t, 100, profile.ValueIndices[IndexTreatmentAttitude])
	assert.Equal(t, 50, profile.ValueIndices[IndexSocialOrientation])

	assert.Equal(t,
		[]string{"family_wellbeing", "health_improvement", "future_goals", "positive_outlook"},
		profile.CommunicationGuidelines.Motivators)
	assert.Empty(t, profile.CommunicationGuidelines.AvoidTopics)
}

func TestComputeValuesProfileSupportive(t *testing.T) {
	associations := map[string]string{
		ConceptMyself:  ColorBlack,
		ConceptHealth:  ColorGray,
		ConceptIllness: ColorBrown,
		ConceptFuture:  ColorGreen,
	}
	profile, err := ComputeValuesProfile(associations, Palette())
	require.NoError(t, err)
	assert.Equal(t, StyleSupportive, profile.CommunicationGuidelines.CommunicationStyle)
}

func TestComputeValuesProfileEmptyAssociations(t *testing.T) {
	profile, err := ComputeValuesProfile(map[string]string{}, Palette())
	require.NoError(t, err)

	for _, index := range []string{
		IndexLifeSatisfaction, IndexFutureOrientation, IndexFamilyImportance,
		IndexHealthPriority, IndexSocialOrientation, IndexTreatmentAttitude,
	} {
		assert.Equal(t, MidpointIndex, profile.ValueIndices[index], index)
	}
	assert.Equal(t, StyleBalanced, profile.CommunicationGuidelines.CommunicationStyle)
	assert.Empty(t, profile.CommunicationGuidelines.Motivators)
	assert.Empty(t, profile.CommunicationGuidelines.AvoidTopics)
}

func TestComputeValuesProfileLowIndexAvoidTopics(t *testing.T) {
	// The treatment concept gets the least preferred color, driving the
	// treatment index to 0.
	ranking := Palette()
	associations := map[string]string{
		ConceptTreatment: ranking[len(ranking)-1],
	}
	profile, err := ComputeValuesProfile(associations, ranking)
	require.NoError(t, err)

	assert.Equal(t, 0, profile.ValueIndices[IndexTreatmentAttitude])
	assert.Contains(t, profile.CommunicationGuidelines.AvoidTopics, "treatment_ultimatums")
}

func TestComputeValuesProfilePartialPairAverages(t *testing.T) {
	// Only one of the two family concepts is colored; the index averages
	// over colored concepts only.
	ranking := Palette()
	associations := map[string]string{
		ConceptFamily: ranking[1], // (11-2)/10 * 100 = 90
	}
	profile, err := ComputeValuesProfile(associations, ranking)
	require.NoError(t, err)
	assert.Equal(t, 90, profile.ValueIndices[IndexFamilyImportance])
}

func TestComputeValuesProfileValidation(t *testing.T) {
	full := Palette()

	t.Run("short ranking", func(t *testing.T) {
		_, err := ComputeValuesProfile(nil, full[:5])
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, SurveyValues, vErr.Survey)
	})

	t.Run("duplicate color", func(t *testing.T) {
		dup := append([]string{}, full...)
		dup[1] = dup[0]
		_, err := ComputeValuesProfile(nil, dup)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("unknown color in ranking", func(t *testing.T) {
		bad := append([]string{}, full...)
		bad[0] = "magenta"
		_, err := ComputeValuesProfile(nil, bad)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("unknown concept", func(t *testing.T) {
		_, err := ComputeValuesProfile(map[string]string{"my_pet": ColorGreen}, full)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("unknown color in association", func(t *testing.T) {
		_, err := ComputeValuesProfile(map[string]string{ConceptMyself: "magenta"}, full)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})
}

func TestComputeValuesProfileCopiesInput(t *testing.T) {
	associations := map[string]string{ConceptMyself: ColorGreen}
	profile, err := ComputeValuesProfile(associations, Palette())
	require.NoError(t, err)

	associations[ConceptMyself] = ColorBlack
	assert.Equal(t, ColorGreen, profile.ColorAssociations[ConceptMyself])
}
