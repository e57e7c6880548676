package rest

import (
	"context"
	"net/http"
	"time"

	"aromaSpa/domain"
	"aromaSpa/pkg/logger"

	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

type CatalogService interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	GetItemByID(ctx context.Context, id string) (*domain.Item, error)
	GetConcerns(ctx context.Context, category string) ([]domain.Concern, error)
}

type CatalogHandler struct {
	catalogService CatalogService
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		timeout:        10 * time.Second,
	}
}

func (h *CatalogHandler) GetAllItems(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.catalogService.GetAllItems(ctx)
	if err != nil {
		logger.Error("Failed to find all items", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all items",
		"items":   items,
	})
}

func (h *CatalogHandler) GetItemByID(c echo.Context) error {
	itemID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.catalogService.GetItemByID(ctx, itemID)
	if err != nil {
		if err.Error() == "item not found" || err.Error() == "invalid item id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find item by id",
		"item":    item,
	})
}

// GET /api/v1/concerns?category=mental
func (h *CatalogHandler) GetConcerns(c echo.Context) error {
	category := c.QueryParam("category")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	concerns, err := h.catalogService.GetConcerns(ctx, category)
	if err != nil {
		logger.Error("Failed to find concerns", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get concerns",
		"concerns": concerns,
	})
}
