package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	profilersdk "github.com/caretalk/profiler-sdk-go"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type failingResponder struct{}

func (failingResponder) Respond(context.Context, []profilersdk.Message, profilersdk.RespondMeta) (*profilersdk.Reply, error) {
	return nil, errors.New("provider unavailable")
}

func newTestRouter(config ...profilersdk.EngineConfig) *gin.Engine {
	engine := profilersdk.NewEngine(config...)
	return NewRouter(engine, zap.NewNop().Sugar())
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func fullAttitudeAnswers() map[string]int {
	answers := make(map[string]int)
	for _, it := range profilersdk.DefaultAttitudeItems() {
		answers[it.ID] = 0
	}
	return answers
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitAttitudeOK(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/v1/surveys/attitude", gin.H{
		"user_id": "u1",
		"answers": fullAttitudeAnswers(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Profile profilersdk.ScaleProfile `json:"profile"`
		Summary string                   `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, profilersdk.ProfileSchemaVersion, resp.Profile.Version)
	assert.NotEmpty(t, resp.Summary)
}

func TestSubmitAttitudeValidationError(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/v1/surveys/attitude", gin.H{
		"user_id": "u1",
		"answers": map[string]int{"a01": 1},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "attitude survey validation")
}

func TestSubmitAttitudeMissingBody(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/v1/surveys/attitude", gin.H{"user_id": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitTypologyCheckedForm(t *testing.T) {
	router := newTestRouter()
	checked := map[string]bool{}
	for _, it := range profilersdk.DefaultChecklistItems() {
		if it.Type == profilersdk.TypePedantic {
			checked[it.ID] = true
		}
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/surveys/typology", gin.H{
		"user_id": "u1",
		"checked": checked,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pedantic")
}

func TestSubmitTypologyNeitherForm(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/v1/surveys/typology", gin.H{"user_id": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitValuesOK(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/v1/surveys/values", gin.H{
		"user_id":      "u1",
		"associations": map[string]string{profilersdk.ConceptMyself: profilersdk.ColorGreen},
		"ranking":      profilersdk.Palette(),
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBuildPlanWithoutProfiles(t *testing.T) {
	// A user with no submissions still gets a plan: the default one.
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/v1/plan", gin.H{"user_id": "nobody"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PIB profilersdk.PIB `json:"pib"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.PIB.CommunicationPlan)
	assert.Equal(t, profilersdk.ToneCalmSupportive, resp.PIB.CommunicationPlan.Tone)
	assert.NotEmpty(t, resp.PIB.ID)
}

func TestChatRoundtrip(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/v1/chat", gin.H{
		"user_id":  "u1",
		"messages": []gin.H{{"role": "user", "content": "hello"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello")
}

func TestChatUpstreamFailure(t *testing.T) {
	router := newTestRouter(profilersdk.EngineConfig{Responder: failingResponder{}})
	w := doJSON(t, router, http.MethodPost, "/api/v1/chat", gin.H{
		"user_id":  "u1",
		"messages": []gin.H{{"role": "user", "content": "hello"}},
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	// The raw provider error never reaches the client.
	assert.NotContains(t, w.Body.String(), "provider unavailable")
	assert.Contains(t, w.Body.String(), "something went wrong")
}

func TestStats(t *testing.T) {
	router := newTestRouter()
	doJSON(t, router, http.MethodPost, "/api/v1/surveys/values", gin.H{
		"user_id":      "u1",
		"associations": map[string]string{},
		"ranking":      profilersdk.Palette(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats profilersdk.EngineStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.Submissions)
}
