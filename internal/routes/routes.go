package routes

import (
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Админские группы проходят через session-гейт, логин и логаут
// остаются снаружи.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	store sessions.Store,
) {
	api := ginRouter.Group("/api")
	{
		appHandlers.Contact.RegisterRoutes(api)
		appHandlers.Chat.RegisterRoutes(api)
	}

	admin := ginRouter.Group("/admin")
	appHandlers.Auth.RegisterRoutes(admin)

	adminPages := admin.Group("", middleware.RequireAdmin(store))
	apiAdmin := api.Group("/admin", middleware.RequireAdmin(store))
	{
		appHandlers.Admin.RegisterRoutes(adminPages, apiAdmin)
		appHandlers.Content.RegisterRoutes(api, apiAdmin)
	}
}
