package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/controllers"
	"github.com/onespirit/onespirit/app/repository"
	"github.com/onespirit/onespirit/internal/pkg/middleware"
	"github.com/onespirit/onespirit/internal/pkg/session"
	"github.com/onespirit/onespirit/internal/pkg/tenantresolver"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Tenant resolver backed by the shared Redis cache. Controllers get a
	// handle so tenant writes can invalidate cached slug lookups.
	resolver := tenantresolver.New(
		repository.GetGlobalFactory().GetTenantRepository(),
		tenantresolver.NewRedisCache(),
	)
	controllers.SetTenantResolver(resolver)

	// The order is fixed: identify the user, then resolve the tenant on a
	// clean context, then enforce tenant access. Every request passes the
	// whole chain.
	app.Use(middleware.UserContextMiddleware)
	app.Use(middleware.TenantContextMiddleware(resolver))
	app.Use(middleware.AdminTenantSelectionMiddleware(resolver))
	app.Use(middleware.TenantAccessControlMiddleware)

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
