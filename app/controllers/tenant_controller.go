package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/app/repository"
	"github.com/onespirit/onespirit/internal/pkg/session"
	"github.com/onespirit/onespirit/internal/pkg/statistics"
	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
	"github.com/onespirit/onespirit/internal/pkg/tenantresolver"
	"github.com/onespirit/onespirit/internal/pkg/usercontext"
)

var resolver *tenantresolver.Resolver

// SetTenantResolver wires the shared resolver so controllers can invalidate
// cached slug lookups after tenant writes.
func SetTenantResolver(r *tenantresolver.Resolver) {
	resolver = r
}

type createTenantRequest struct {
	Tenant  models.TenantAccount `json:"tenant"`
	Contact models.Contact       `json:"contact"`
}

// HandleListTenants lists all tenant accounts. Admin only.
func HandleListTenants(c *fiber.Ctx) error {
	offset, limit := pagination(c)
	repo := repository.GetGlobalFactory().GetTenantRepository()
	tenants, err := repo.List(offset, limit)
	if err != nil {
		return respondError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"tenants": tenants, "total": total})
}

// HandleCreateTenant creates a tenant together with its primary contact in
// one transaction.
func HandleCreateTenant(c *fiber.Ctx) error {
	var req createTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	repo := repository.GetGlobalFactory().GetTenantRepository()
	if err := repo.CreateWithContact(&req.Tenant, &req.Contact); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"tenant":  req.Tenant,
		"contact": req.Contact,
	})
}

// HandleGetTenant returns a single tenant account.
func HandleGetTenant(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid tenant id")
	}
	tenant, err := repository.GetGlobalFactory().GetTenantRepository().GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tenant)
}

// HandleUpdateTenant updates a tenant and drops its cached lookups so slug
// and status changes take effect immediately.
func HandleUpdateTenant(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid tenant id")
	}

	repo := repository.GetGlobalFactory().GetTenantRepository()
	tenant, err := repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	oldSlug := tenant.TenantSlug
	if err := c.BodyParser(tenant); err != nil {
		return badRequest(c, "invalid request body")
	}
	tenant.ID = id

	if err := repo.Update(tenant); err != nil {
		return respondError(c, err)
	}

	if resolver != nil {
		resolver.InvalidateSlug(oldSlug)
		if tenant.TenantSlug != oldSlug {
			resolver.InvalidateSlug(tenant.TenantSlug)
		}
	}
	statistics.InvalidateTenantStats(tenant.ID)

	return c.JSON(tenant)
}

// HandleDeactivateTenant flips a tenant inactive without removing its data.
func HandleDeactivateTenant(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid tenant id")
	}

	repo := repository.GetGlobalFactory().GetTenantRepository()
	tenant, err := repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	if err := repo.Deactivate(id); err != nil {
		return respondError(c, err)
	}

	if resolver != nil {
		resolver.InvalidateSlug(tenant.TenantSlug)
	}
	statistics.InvalidateTenantStats(id)

	return c.JSON(fiber.Map{"message": "tenant deactivated"})
}

// HandleDeleteTenant removes a tenant account entirely.
func HandleDeleteTenant(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid tenant id")
	}

	repo := repository.GetGlobalFactory().GetTenantRepository()
	tenant, err := repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	if err := repo.Delete(id); err != nil {
		return respondError(c, err)
	}

	if resolver != nil {
		resolver.InvalidateSlug(tenant.TenantSlug)
	}
	statistics.InvalidateTenantStats(id)

	return c.JSON(fiber.Map{"message": "tenant deleted"})
}

// HandleGetTenantStats returns the cached dashboard numbers for the current
// tenant.
func HandleGetTenantStats(c *fiber.Ctx) error {
	tenant, ok := tenantctx.TenantFrom(c.UserContext())
	if !ok {
		return badRequest(c, "no tenant resolved for this request")
	}

	stats, err := statistics.GetTenantStats(tenant)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// HandleSelectTenant stores an explicit tenant selection in the session.
// Admin only; regular users are bound to their own tenant by resolution.
func HandleSelectTenant(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid tenant id")
	}

	tenant, err := repository.GetGlobalFactory().GetTenantRepository().GetActiveByID(id)
	if err != nil {
		return respondError(c, err)
	}

	if err := session.SetSessionValue(c, usercontext.KeySelectedTenantID, fmt.Sprintf("%d", tenant.ID)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     "tenant selected",
		"tenant_id":   tenant.ID,
		"tenant_slug": tenant.TenantSlug,
	})
}

// HandleClearTenantSelection drops the session tenant selection.
func HandleClearTenantSelection(c *fiber.Ctx) error {
	if err := session.RemoveSessionValue(c, usercontext.KeySelectedTenantID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "tenant selection cleared"})
}
