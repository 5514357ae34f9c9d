package tenantctx

import (
	"context"

	"github.com/onespirit/onespirit/app/models"
)

// Three independent request-scoped slots: current tenant, current
// organization (club) and current acting user. Values live on the request's
// context.Context, so isolation between concurrent requests is structural —
// each request derives its own context and nothing is shared. "Clearing" a
// slot means deriving a context without it; the middleware starts every
// request from a fresh base context.

type tenantKey struct{}
type organizationKey struct{}
type actorKey struct{}

// WithTenant returns a context carrying the given tenant. A nil tenant
// clears the slot.
func WithTenant(ctx context.Context, tenant *models.TenantAccount) context.Context {
	if tenant == nil {
		return context.WithValue(ctx, tenantKey{}, (*models.TenantAccount)(nil))
	}
	return context.WithValue(ctx, tenantKey{}, tenant)
}

// TenantFrom retrieves the current tenant. Returns nil, false if the slot is
// empty.
func TenantFrom(ctx context.Context) (*models.TenantAccount, bool) {
	tenant, ok := ctx.Value(tenantKey{}).(*models.TenantAccount)
	if !ok || tenant == nil {
		return nil, false
	}
	return tenant, true
}

// TenantIDFrom retrieves just the current tenant ID.
func TenantIDFrom(ctx context.Context) (uint, bool) {
	tenant, ok := TenantFrom(ctx)
	if !ok {
		return 0, false
	}
	return tenant.ID, true
}

// WithOrganization returns a context carrying the given organization (club).
func WithOrganization(ctx context.Context, club *models.Club) context.Context {
	if club == nil {
		return context.WithValue(ctx, organizationKey{}, (*models.Club)(nil))
	}
	return context.WithValue(ctx, organizationKey{}, club)
}

// OrganizationFrom retrieves the current organization.
func OrganizationFrom(ctx context.Context) (*models.Club, bool) {
	club, ok := ctx.Value(organizationKey{}).(*models.Club)
	if !ok || club == nil {
		return nil, false
	}
	return club, true
}

// WithActor returns a context carrying the acting user's profile.
func WithActor(ctx context.Context, profile *models.UserProfile) context.Context {
	if profile == nil {
		return context.WithValue(ctx, actorKey{}, (*models.UserProfile)(nil))
	}
	return context.WithValue(ctx, actorKey{}, profile)
}

// ActorFrom retrieves the acting user's profile.
func ActorFrom(ctx context.Context) (*models.UserProfile, bool) {
	profile, ok := ctx.Value(actorKey{}).(*models.UserProfile)
	if !ok || profile == nil {
		return nil, false
	}
	return profile, true
}
