package profilersdk

// ProfileSchemaVersion is stamped on every computed profile.
const ProfileSchemaVersion = "1.0"

// ScaleScore is the aggregated result for one attitude scale.
type ScaleScore struct {
	Raw   int   `json:"raw"`
	Level Level `json:"level"`
}

// ScaleProfile is the computed attitude-toward-illness profile.
// Immutable after creation; a re-submission produces a fresh profile.
type ScaleProfile struct {
	Version   string                `json:"version"`
	Scales    map[string]ScaleScore `json:"scales"`
	RiskTags  []string              `json:"risk_tags"`
	CommFlags []string              `json:"comm_flags"`
}

// ComputeAttitudeProfile runs the full attitude pipeline: aggregate answers,
// classify each scale, derive risk tags and communication flags.
func ComputeAttitudeProfile(answers map[string]int, items []SurveyItem, thresholds ThresholdTable) (*ScaleProfile, error) {
	sums, err := AggregateAttitude(answers, items)
	if err != nil {
		return nil, err
	}

	scales := make(map[string]ScaleScore, len(sums))
	for scale, raw := range sums {
		scales[scale] = ScaleScore{Raw: raw, Level: thresholds.Classify(scale, raw)}
	}

	riskTags, commFlags := DeriveAttitudeTags(scales)
	return &ScaleProfile{
		Version:   ProfileSchemaVersion,
		Scales:    scales,
		RiskTags:  riskTags,
		CommFlags: commFlags,
	}, nil
}
