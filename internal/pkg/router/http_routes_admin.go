package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/controllers"
	"github.com/onespirit/onespirit/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)

	// Tenant management
	adminGroup.Get("/tenants", controllers.HandleListTenants)
	adminGroup.Post("/tenants", controllers.HandleCreateTenant)
	adminGroup.Get("/tenants/:id", controllers.HandleGetTenant)
	adminGroup.Post("/tenants/update/:id", controllers.HandleUpdateTenant)
	adminGroup.Post("/tenants/deactivate/:id", controllers.HandleDeactivateTenant)
	adminGroup.Post("/tenants/delete/:id", controllers.HandleDeleteTenant)

	// Tenant selection for cross-tenant administration
	adminGroup.Post("/tenants/select/:id", controllers.HandleSelectTenant)
	adminGroup.Post("/tenants/clear-selection", controllers.HandleClearTenantSelection)
}
