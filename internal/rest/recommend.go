package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"aromaSpa/business/recommend"
	"aromaSpa/domain"
	"aromaSpa/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendHandler struct {
		validate          *validator.Validate
		recommendService  RecommendService
		preferenceService PreferenceReader
	}

	RecommendService interface {
		Recommend(ctx context.Context, userID string, concernIDs []string, pref domain.UserPreference, rctx recommend.RequestContext, itemCount int) ([]domain.Item, error)
		DebugRecommend(ctx context.Context, userID string, concernIDs []string, pref domain.UserPreference, rctx recommend.RequestContext, itemCount int) ([]domain.RecommendationScore, error)
		SubmitFeedback(ctx context.Context, rating domain.Rating, rctx recommend.RequestContext) error
		Combine(ctx context.Context, itemIDs []string) (domain.Item, error)
	}

	PreferenceReader interface {
		GetPreference(ctx context.Context, sessionID string) (domain.UserPreference, error)
	}

	RecommendQuery struct {
		Concerns  string `query:"concerns" validate:"required"`
		N         int    `query:"n"`
		TimeOfDay string `query:"time_of_day" validate:"omitempty,oneof=morning afternoon evening"`
		Season    string `query:"season" validate:"omitempty,oneof=spring summer autumn winter"`
	}

	FeedbackRequest struct {
		ItemID string  `json:"item_id" validate:"required"`
		Value  float64 `json:"value" validate:"required"`
	}

	CombineRequest struct {
		ItemIDs []string `json:"item_ids" validate:"required,min=1,dive,required"`
	}
)

func NewRecommendHandler(svc RecommendService, prefs PreferenceReader) *RecommendHandler {
	return &RecommendHandler{
		validate:          validator.New(),
		recommendService:  svc,
		preferenceService: prefs,
	}
}

// requestContext derives the scoring context from the wall clock, letting the
// query pin either bucket for reproducible results.
func requestContext(q RecommendQuery) recommend.RequestContext {
	rctx := recommend.ContextFromTime(time.Now())
	if q.TimeOfDay != "" {
		rctx.TimeOfDay = q.TimeOfDay
	}
	if q.Season != "" {
		rctx.Season = q.Season
	}
	return rctx
}

func splitConcerns(raw string) []string {
	parts := strings.Split(raw, ",")
	concerns := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			concerns = append(concerns, trimmed)
		}
	}
	return concerns
}

// GET /api/v1/recommendations?concerns=relaxation,sleep&n=5
func (h *RecommendHandler) Recommend(c echo.Context) error {
	sessionID, ok := c.Get("session_id").(string)
	if !ok || sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing session"})
	}

	timer := time.Now()
	metrics.RecommendRequests.Inc()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(timer).Seconds())
	}()

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx := c.Request().Context()

	pref, err := h.preferenceService.GetPreference(ctx, sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	items, err := h.recommendService.Recommend(ctx, sessionID, splitConcerns(q.Concerns), pref, requestContext(q), q.N)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(items))
}

// GET /api/v1/recommendations/debug?concerns=relaxation,sleep&n=5
func (h *RecommendHandler) DebugRecommend(c echo.Context) error {
	sessionID, ok := c.Get("session_id").(string)
	if !ok || sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing session"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx := c.Request().Context()

	pref, err := h.preferenceService.GetPreference(ctx, sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	scores, err := h.recommendService.DebugRecommend(ctx, sessionID, splitConcerns(q.Concerns), pref, requestContext(q), q.N)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(scores))
}

// POST /api/v1/recommendations/feedback
func (h *RecommendHandler) Feedback(c echo.Context) error {
	sessionID, ok := c.Get("session_id").(string)
	if !ok || sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing session"})
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	rating := domain.Rating{
		UserID: sessionID,
		ItemID: req.ItemID,
		Value:  req.Value,
	}

	err := h.recommendService.SubmitFeedback(c.Request().Context(), rating, recommend.ContextFromTime(time.Now()))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("feedback recorded"))
}

// POST /api/v1/recommendations/combine
func (h *RecommendHandler) Combine(c echo.Context) error {
	var req CombineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	blend, err := h.recommendService.Combine(c.Request().Context(), req.ItemIDs)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(blend))
}
