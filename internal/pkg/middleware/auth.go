package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
	"github.com/onespirit/onespirit/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in session and returns JSON 401 otherwise.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}

// RequireAdmin ensures a logged-in system administrator.
func RequireAdmin(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	if !usercontext.IsAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "admin access required",
		})
	}
	return c.Next()
}

// TenantAccessControlMiddleware rejects logged-in users who try to operate on
// a tenant their contact does not belong to. Superusers and system admins
// pass; anonymous requests are left to the auth guards. A denial here is
// final for the request.
func TenantAccessControlMiddleware(c *fiber.Ctx) error {
	tenant, ok := tenantctx.TenantFrom(c.UserContext())
	if !ok {
		return c.Next()
	}

	actor, ok := tenantctx.ActorFrom(c.UserContext())
	if !ok {
		return c.Next()
	}

	if actor.IsSystemAdmin() {
		return c.Next()
	}

	if !actor.CanAccessTenant(tenant) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "access denied",
		})
	}
	return c.Next()
}
