package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	profilersdk "github.com/caretalk/profiler-sdk-go"
)

type handler struct {
	engine *profilersdk.Engine
	log    *zap.SugaredLogger
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Stats())
}

func (h *handler) submitAttitude(c *gin.Context) {
	var req struct {
		UserID  string         `json:"user_id" binding:"required"`
		Answers map[string]int `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	profile, summary, err := h.engine.SubmitAttitude(c.Request.Context(), req.UserID, req.Answers)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile, "summary": summary})
}

func (h *handler) submitTypology(c *gin.Context) {
	var req struct {
		UserID     string              `json:"user_id" binding:"required"`
		Checked    map[string]bool     `json:"checked"`
		Selections map[string][]string `json:"selections"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Checked == nil && req.Selections == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either checked or selections is required"})
		return
	}

	var (
		profile *profilersdk.TypologyProfile
		summary string
		err     error
	)
	if req.Checked != nil {
		profile, summary, err = h.engine.SubmitTypology(c.Request.Context(), req.UserID, req.Checked)
	} else {
		profile, summary, err = h.engine.SubmitTypologySelections(c.Request.Context(), req.UserID, req.Selections)
	}
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile, "summary": summary})
}

func (h *handler) submitValues(c *gin.Context) {
	var req struct {
		UserID       string            `json:"user_id" binding:"required"`
		Associations map[string]string `json:"associations" binding:"required"`
		Ranking      []string          `json:"ranking" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	profile, summary, err := h.engine.SubmitValues(c.Request.Context(), req.UserID, req.Associations, req.Ranking)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile, "summary": summary})
}

func (h *handler) buildPlan(c *gin.Context) {
	var req struct {
		UserID       string         `json:"user_id" binding:"required"`
		Demographics map[string]any `json:"demographics"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	pib, err := h.engine.BuildPlan(c.Request.Context(), req.UserID, req.Demographics)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pib": pib})
}

func (h *handler) chat(c *gin.Context) {
	var req struct {
		UserID   string                `json:"user_id" binding:"required"`
		Messages []profilersdk.Message `json:"messages" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	reply, err := h.engine.Chat(c.Request.Context(), req.UserID, req.Messages)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": reply.Content})
}

// renderError maps core errors to HTTP responses. Upstream failures are
// degraded to a generic message so raw provider errors never reach users.
func (h *handler) renderError(c *gin.Context, err error) {
	var validationErr *profilersdk.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}
	var shapeErr *profilersdk.ProfileShapeError
	if errors.As(err, &shapeErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": shapeErr.Error()})
		return
	}
	var upstreamErr *profilersdk.UpstreamError
	if errors.As(err, &upstreamErr) {
		h.log.Warnw("upstream failure", "op", upstreamErr.Op, "error", upstreamErr.Err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "something went wrong, please try again"})
		return
	}
	h.log.Errorw("internal error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
