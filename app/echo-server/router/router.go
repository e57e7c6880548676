package router

import (
	"aromaSpa/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations")
	reco.GET("", handler.Recommend)
	reco.GET("/debug", handler.DebugRecommend)
	reco.POST("/feedback", handler.Feedback)
	reco.POST("/combine", handler.Combine)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	items := api.Group("/items")
	items.GET("", handler.GetAllItems)
	items.GET("/:id", handler.GetItemByID)

	api.GET("/concerns", handler.GetConcerns)
}

func SetPreferenceRoutes(api *echo.Group, handler *rest.PreferenceHandler) {
	prefs := api.Group("/preferences")
	prefs.GET("", handler.GetPreference)
	prefs.PUT("/weights", handler.UpdateWeights)
	prefs.PUT("/scents", handler.UpdateScents)
}
