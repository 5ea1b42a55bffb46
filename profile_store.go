package profilersdk

import (
	"context"
	"fmt"
	"sync"
)

// ──────────────────────────────────────────────
// ProfileStore — key-value boundary for answers, profiles and plans
// ──────────────────────────────────────────────

// Survey identifiers used in store keys and error messages.
const (
	SurveyAttitude = "attitude"
	SurveyTypology = "typology"
	SurveyValues   = "values"
)

// ProfileStore is the key-value persistence boundary. Each key is
// independent; no multi-key transactional guarantee is required.
type ProfileStore interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the value, replacing any previous one.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// AnswersKey is the store key for a user's raw answers to one survey.
func AnswersKey(survey, userID string) string {
	return fmt.Sprintf("answers:%s:%s", survey, userID)
}

// ProfileKey is the store key for a user's computed profile for one survey.
func ProfileKey(survey, userID string) string {
	return fmt.Sprintf("profile:%s:%s", survey, userID)
}

// PlanKey is the store key for a user's merged plan.
func PlanKey(userID string) string {
	return fmt.Sprintf("plan:%s", userID)
}

// InMemoryProfileStore is a thread-safe in-memory ProfileStore for tests and
// single-process deployments.
type InMemoryProfileStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewInMemoryProfileStore creates an empty in-memory store.
func NewInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{data: make(map[string][]byte)}
}

func (s *InMemoryProfileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *InMemoryProfileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *InMemoryProfileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

var _ ProfileStore = (*InMemoryProfileStore)(nil)
