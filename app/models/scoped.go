package models

// Capability interfaces for the scoped query filter. Entities opt in at
// compile time instead of being probed for fields at runtime.

// TenantScoped is implemented by entities carrying a direct tenant column.
type TenantScoped interface {
	TenantColumn() string
}

// OrganizationScoped is implemented by entities carrying a direct
// organization (club) column, filtered in addition to the tenant filter.
type OrganizationScoped interface {
	OrganizationColumn() string
}

// ClubScoped is implemented by join-table entities without a tenant column
// whose tenant is derived through their club parent.
type ClubScoped interface {
	ClubColumn() string
}
