package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey             = "authenticated"
	KeyProfileID        = "profile_id"
	KeyEmail            = "email"
	KeyIsAdmin          = "isAdmin"
	KeySelectedTenantID = "selected_tenant_id"
	KeyTenantLocal      = "TENANT"
	KeyUserLocal        = "USER_CONTEXT"
)
