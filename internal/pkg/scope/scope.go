// Package scope implements the tenant isolation query filters as gorm
// scopes. A scope narrows a query only when the matching context slot is
// populated; with an empty context every scope is a no-op, which is what
// allows cross-tenant administrative operations. Repositories additionally
// expose unscoped accessors for quota and validation checks that must never
// be influenced by caller context.
package scope

import (
	"context"

	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
)

// Tenant narrows a query to the context tenant for entities carrying a
// direct tenant column.
func Tenant(ctx context.Context, m models.TenantScoped) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		id, ok := tenantctx.TenantIDFrom(ctx)
		if !ok {
			return db
		}
		return db.Where(m.TenantColumn()+" = ?", id)
	}
}

// Organization narrows a query to the context organization, in addition to
// whatever tenant narrowing is already applied.
func Organization(ctx context.Context, m models.OrganizationScoped) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		org, ok := tenantctx.OrganizationFrom(ctx)
		if !ok {
			return db
		}
		return db.Where(m.OrganizationColumn()+" = ?", org.ID)
	}
}

// ClubTenant narrows join-table entities without a tenant column to the
// context tenant through their club parent.
func ClubTenant(ctx context.Context, m models.ClubScoped) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		id, ok := tenantctx.TenantIDFrom(ctx)
		if !ok {
			return db
		}
		clubs := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Club{}).
			Select("id").
			Where("tenant_id = ?", id)
		return db.Where(m.ClubColumn()+" IN (?)", clubs)
	}
}

// PaymentTenant narrows payment history to the context tenant. Payments
// carry no tenant column; tenant payments match the account id directly,
// member payments through the member's tenant.
func PaymentTenant(ctx context.Context) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		id, ok := tenantctx.TenantIDFrom(ctx)
		if !ok {
			return db
		}
		members := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.MemberAccount{}).
			Select("id").
			Where("tenant_id = ?", id)
		return db.Where(
			"(account_type = ? AND account_id = ?) OR (account_type = ? AND account_id IN (?))",
			models.PaymentAccountTenant, id, models.PaymentAccountMember, members,
		)
	}
}

// StaffVisibility narrows club-scoped entities to clubs where the acting
// user holds an active staff assignment. Superusers and admin-level profiles
// are exempt. The filter only engages when a tenant context is
// simultaneously set, so user filtering can never leak rows across tenants.
func StaffVisibility(ctx context.Context, m models.ClubScoped) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if _, ok := tenantctx.TenantIDFrom(ctx); !ok {
			return db
		}
		actor, ok := tenantctx.ActorFrom(ctx)
		if !ok {
			return db
		}
		if actor.IsSystemAdmin() {
			return db
		}
		assigned := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.ClubStaff{}).
			Select("club_id").
			Where("contact_id = ? AND is_active = ?", actor.ContactID, true)
		return db.Where(m.ClubColumn()+" IN (?)", assigned)
	}
}
