package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/internal/pkg/session"
	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
	"github.com/onespirit/onespirit/internal/pkg/tenantresolver"
	"github.com/onespirit/onespirit/internal/pkg/usercontext"
)

// TenantContextMiddleware resolves the current tenant for every request and
// attaches it to the request context and fiber Locals. Each request starts
// with explicitly cleared tenant and organization slots so nothing can leak
// from a previous resolution.
func TenantContextMiddleware(resolver *tenantresolver.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := tenantctx.WithTenant(c.UserContext(), nil)
		ctx = tenantctx.WithOrganization(ctx, nil)

		sessionTenantID := session.GetSessionValue(c, usercontext.KeySelectedTenantID)
		result := resolver.Resolve(c.Hostname(), c.Path(), sessionTenantID)

		if result.StaleSession {
			// Selection points at a deleted or deactivated tenant
			_ = session.RemoveSessionValue(c, usercontext.KeySelectedTenantID)
		}

		if result.Tenant != nil {
			ctx = tenantctx.WithTenant(ctx, result.Tenant)
			c.Locals(usercontext.KeyTenantLocal, result.Tenant)
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// AdminTenantSelectionMiddleware lets system administrators operate on a
// tenant they explicitly selected, overriding whatever host-based resolution
// produced. Non-admin users are unaffected.
func AdminTenantSelectionMiddleware(resolver *tenantresolver.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !usercontext.IsAdmin(c) {
			return c.Next()
		}

		raw := session.GetSessionValue(c, usercontext.KeySelectedTenantID)
		if raw == "" {
			return c.Next()
		}

		var id uint
		if _, err := fmt.Sscanf(raw, "%d", &id); err != nil {
			_ = session.RemoveSessionValue(c, usercontext.KeySelectedTenantID)
			return c.Next()
		}

		tenant := resolver.ByID(id)
		if tenant == nil {
			_ = session.RemoveSessionValue(c, usercontext.KeySelectedTenantID)
			return c.Next()
		}

		c.SetUserContext(tenantctx.WithTenant(c.UserContext(), tenant))
		c.Locals(usercontext.KeyTenantLocal, tenant)
		return c.Next()
	}
}
