package rest

import (
	"context"
	"net/http"

	"aromaSpa/domain"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PreferenceService interface {
		GetPreference(ctx context.Context, sessionID string) (domain.UserPreference, error)
		UpdateWeights(ctx context.Context, sessionID string, weights map[string]float64) (domain.UserPreference, error)
		UpdateScents(ctx context.Context, sessionID string, favorites, allergies []string) (domain.UserPreference, error)
	}

	PreferenceHandler struct {
		validate          *validator.Validate
		preferenceService PreferenceService
	}

	UpdateWeightsRequest struct {
		Weights map[string]float64 `json:"weights" validate:"required,min=1,dive,gte=0,lte=2"`
	}

	UpdateScentsRequest struct {
		Favorites []string `json:"favorites"`
		Allergies []string `json:"allergies"`
	}
)

func NewPreferenceHandler(svc PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		validate:          validator.New(),
		preferenceService: svc,
	}
}

func (h *PreferenceHandler) GetPreference(c echo.Context) error {
	sessionID, ok := c.Get("session_id").(string)
	if !ok || sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing session"})
	}

	pref, err := h.preferenceService.GetPreference(c.Request().Context(), sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "successfully get preference",
		"preference": pref,
	})
}

// PUT /api/v1/preferences/weights
func (h *PreferenceHandler) UpdateWeights(c echo.Context) error {
	sessionID, ok := c.Get("session_id").(string)
	if !ok || sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing session"})
	}

	var req UpdateWeightsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	pref, err := h.preferenceService.UpdateWeights(c.Request().Context(), sessionID, req.Weights)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "successfully update weights",
		"preference": pref,
	})
}

// PUT /api/v1/preferences/scents
func (h *PreferenceHandler) UpdateScents(c echo.Context) error {
	sessionID, ok := c.Get("session_id").(string)
	if !ok || sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing session"})
	}

	var req UpdateScentsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	pref, err := h.preferenceService.UpdateScents(c.Request().Context(), sessionID, req.Favorites, req.Allergies)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "successfully update scents",
		"preference": pref,
	})
}
