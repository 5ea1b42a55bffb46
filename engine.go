package profilersdk

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// ──────────────────────────────────────────────
// Engine — wires the pure pipeline to store and responder
// ──────────────────────────────────────────────

// EngineConfig configures an Engine. Zero-value fields fall back to the
// built-in survey definitions, an in-memory store and an echo responder.
type EngineConfig struct {
	Items      []SurveyItem
	Checklist  []ChecklistItem
	Thresholds ThresholdTable
	MinScore   int
	Margin     int
	Store      ProfileStore
	Responder  Responder
	Logger     *zap.SugaredLogger
}

// Engine runs survey submissions, plan merging and chat pass-through for
// independent users. All methods are safe for concurrent use; the compute
// core is pure and the store carries per-user keys only.
type Engine struct {
	items      []SurveyItem
	checklist  []ChecklistItem
	thresholds ThresholdTable
	minScore   int
	margin     int
	store      ProfileStore
	responder  Responder
	log        *zap.SugaredLogger

	submissions atomic.Int64
	merges      atomic.Int64
	chats       atomic.Int64
}

// EngineStats is a snapshot of the engine counters.
type EngineStats struct {
	Submissions int64 `json:"submissions"`
	Merges      int64 `json:"merges"`
	Chats       int64 `json:"chats"`
}

// NewEngine creates an Engine, filling defaults for unset config fields.
func NewEngine(config ...EngineConfig) *Engine {
	var cfg EngineConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Items == nil {
		cfg.Items = DefaultAttitudeItems()
	}
	if cfg.Checklist == nil {
		cfg.Checklist = DefaultChecklistItems()
	}
	if cfg.Thresholds == nil {
		cfg.Thresholds = DefaultThresholds()
	}
	if cfg.MinScore == 0 {
		cfg.MinScore = DefaultMinScore
	}
	if cfg.Margin == 0 {
		cfg.Margin = DefaultMargin
	}
	if cfg.Store == nil {
		cfg.Store = NewInMemoryProfileStore()
	}
	if cfg.Responder == nil {
		cfg.Responder = EchoResponder{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	return &Engine{
		items:      cfg.Items,
		checklist:  cfg.Checklist,
		thresholds: cfg.Thresholds,
		minScore:   cfg.MinScore,
		margin:     cfg.Margin,
		store:      cfg.Store,
		responder:  cfg.Responder,
		log:        cfg.Logger,
	}
}

// SubmitAttitude validates and scores an attitude answer set, persists the
// raw answers and the computed profile (replacing any previous submission)
// and returns the profile with its summary.
func (e *Engine) SubmitAttitude(ctx context.Context, userID string, answers map[string]int) (*ScaleProfile, string, error) {
	profile, err := ComputeAttitudeProfile(answers, e.items, e.thresholds)
	if err != nil {
		return nil, "", err
	}
	if err := e.persistSubmission(ctx, SurveyAttitude, userID, answers, profile); err != nil {
		return nil, "", err
	}
	e.submissions.Inc()
	e.log.Infow("attitude profile computed", "user_id", userID, "risk_tags", profile.RiskTags)
	return profile, AttitudeSummary(profile), nil
}

// SubmitTypology scores a typology checklist and persists the result.
func (e *Engine) SubmitTypology(ctx context.Context, userID string, checked map[string]bool) (*TypologyProfile, string, error) {
	profile, err := ComputeTypologyProfile(checked, e.checklist, e.minScore, e.margin)
	if err != nil {
		return nil, "", err
	}
	if err := e.persistSubmission(ctx, SurveyTypology, userID, checked, profile); err != nil {
		return nil, "", err
	}
	e.submissions.Inc()
	e.log.Infow("typology profile computed", "user_id", userID, "dominant_types", profile.DominantTypes)
	return profile, TypologySummary(profile), nil
}

// SubmitTypologySelections accepts the option-selection answer form,
// normalizes it into the checklist map and scores it.
func (e *Engine) SubmitTypologySelections(ctx context.Context, userID string, selections map[string][]string) (*TypologyProfile, string, error) {
	checked, err := NormalizeSelections(selections)
	if err != nil {
		return nil, "", err
	}
	return e.SubmitTypology(ctx, userID, checked)
}

// SubmitValues scores a values survey and persists the result.
func (e *Engine) SubmitValues(ctx context.Context, userID string, associations map[string]string, ranking []string) (*ValuesProfile, string, error) {
	profile, err := ComputeValuesProfile(associations, ranking)
	if err != nil {
		return nil, "", err
	}
	raw := struct {
		Associations map[string]string `json:"associations"`
		Ranking      []string          `json:"ranking"`
	}{associations, ranking}
	if err := e.persistSubmission(ctx, SurveyValues, userID, raw, profile); err != nil {
		return nil, "", err
	}
	e.submissions.Inc()
	e.log.Infow("values profile computed", "user_id", userID,
		"style", profile.CommunicationGuidelines.CommunicationStyle)
	return profile, ValuesSummary(profile), nil
}

// BuildPlan loads whatever profiles the user has submitted, merges them into
// a communication plan and persists the resulting PIB. Any subset of
// profiles may be absent.
func (e *Engine) BuildPlan(ctx context.Context, userID string, demographics map[string]any) (*PIB, error) {
	var attitude *ScaleProfile
	if err := e.loadProfile(ctx, SurveyAttitude, userID, &attitude); err != nil {
		return nil, err
	}
	var typology *TypologyProfile
	if err := e.loadProfile(ctx, SurveyTypology, userID, &typology); err != nil {
		return nil, err
	}
	var values *ValuesProfile
	if err := e.loadProfile(ctx, SurveyValues, userID, &values); err != nil {
		return nil, err
	}

	pib, err := BuildPIB(attitude, typology, values, demographics)
	if err != nil {
		return nil, err
	}
	pib.ID = uuid.NewString()

	data, err := json.Marshal(pib)
	if err != nil {
		return nil, fmt.Errorf("marshal pib: %w", err)
	}
	if err := e.store.Set(ctx, PlanKey(userID), data); err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}
	e.merges.Inc()
	e.log.Infow("communication plan built", "user_id", userID, "pib_id", pib.ID,
		"tone", pib.CommunicationPlan.Tone)
	return pib, nil
}

// Chat forwards the history to the conversational responder, annotated with
// the user's stored plan when one exists. Responder failures surface as
// retryable UpstreamErrors; cancellation is the caller's context.
func (e *Engine) Chat(ctx context.Context, userID string, history []Message) (*Reply, error) {
	var meta RespondMeta
	data, err := e.store.Get(ctx, PlanKey(userID))
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if data != nil {
		var pib PIB
		if err := json.Unmarshal(data, &pib); err != nil {
			return nil, fmt.Errorf("unmarshal plan: %w", err)
		}
		meta.Plan = pib.CommunicationPlan
	}

	reply, err := e.responder.Respond(ctx, history, meta)
	if err != nil {
		e.log.Warnw("responder failed", "user_id", userID, "error", err)
		return nil, &UpstreamError{Op: "responder", Err: err, Retryable: true}
	}
	e.chats.Inc()
	return reply, nil
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		Submissions: e.submissions.Load(),
		Merges:      e.merges.Load(),
		Chats:       e.chats.Load(),
	}
}

func (e *Engine) persistSubmission(ctx context.Context, survey, userID string, answers any, profile any) error {
	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal %s answers: %w", survey, err)
	}
	rawProfile, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal %s profile: %w", survey, err)
	}
	if err := e.store.Set(ctx, AnswersKey(survey, userID), rawAnswers); err != nil {
		return fmt.Errorf("store %s answers: %w", survey, err)
	}
	if err := e.store.Set(ctx, ProfileKey(survey, userID), rawProfile); err != nil {
		return fmt.Errorf("store %s profile: %w", survey, err)
	}
	return nil
}

// loadProfile unmarshals the stored profile for a survey into target, which
// must be a pointer to a profile pointer. An absent key leaves target nil.
func (e *Engine) loadProfile(ctx context.Context, survey, userID string, target any) error {
	data, err := e.store.Get(ctx, ProfileKey(survey, userID))
	if err != nil {
		return fmt.Errorf("load %s profile: %w", survey, err)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshal %s profile: %w", survey, err)
	}
	return nil
}
