package router

import (
	"eventRadar/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/me", handler.Me, authRequired)
	users.PUT("/location", handler.UpdateLocation, authRequired)

	prefs := api.Group("/preferences", authRequired)
	prefs.GET("", handler.GetPreferences)
	prefs.POST("", handler.SavePreferences)
}

func SetupEventRoutes(api *echo.Group, handler *rest.EventHandler) {
	events := api.Group("/events")

	events.GET("", handler.ListEvents)
	events.GET("/categories", handler.GetCategories)
	events.GET("/statistics", handler.GetStatistics)
	events.GET("/statistics/monthly", handler.GetMonthlyStatistics)
	events.GET("/:id", handler.GetEventByID)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.GET("", handler.Recommend)
	reco.GET("/debug", handler.DebugRecommend)
}

func SetupInteractionRoutes(api *echo.Group, handler *rest.InteractionHandler, authRequired echo.MiddlewareFunc) {
	interactions := api.Group("/interactions", authRequired)

	interactions.POST("", handler.Record)
}

func SetupRecommendAdminRoutes(api *echo.Group, handler *rest.RecommendAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/recommendations", authRequired, adminOnly)

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
}
