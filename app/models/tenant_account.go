package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	SubscriptionBasic      = "basic"
	SubscriptionPremium    = "premium"
	SubscriptionEnterprise = "enterprise"

	AccountStatusActive    = "active"
	AccountStatusSuspended = "suspended"
	AccountStatusClosed    = "closed"
)

// TenantAccount is the top-level customer owning members, clubs and contacts.
//
// PrimaryContactID is nullable at the database level to break the circular
// dependency between tenant and contact (a contact needs a tenant, the tenant
// needs a contact). The two-phase create-then-link protocol in the repository
// sets it right after creation; Validate enforces it for persisted rows.
type TenantAccount struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TenantName   string `gorm:"type:varchar(100)" json:"tenant_name" validate:"required,max=100"`
	TenantSlug   string `gorm:"type:varchar(100);uniqueIndex" json:"tenant_slug" validate:"required,max=100"`
	TenantDomain string `gorm:"type:varchar(100)" json:"tenant_domain" validate:"max=100"`

	PrimaryContactID *uint    `gorm:"index" json:"primary_contact_id"`
	PrimaryContact   *Contact `gorm:"foreignKey:PrimaryContactID" json:"primary_contact,omitempty"`
	BillingContactID *uint    `json:"billing_contact_id"`
	BillingEmail     string   `gorm:"type:varchar(200)" json:"billing_email" validate:"omitempty,email,max=200"`

	SubscriptionType      string     `gorm:"type:varchar(50);default:'basic';index" json:"subscription_type" validate:"oneof=basic premium enterprise"`
	SubscriptionStartDate time.Time  `gorm:"type:timestamp" json:"subscription_start_date"`
	SubscriptionEndDate   *time.Time `gorm:"type:timestamp;index" json:"subscription_end_date"`
	MonthlyFee            float64    `gorm:"type:decimal(10,2);default:0" json:"monthly_fee" validate:"gte=0"`

	MaxMemberAccounts uint `gorm:"default:100" json:"max_member_accounts"`
	MaxClubs          uint `gorm:"default:5" json:"max_clubs"`
	MaxAssociations   uint `gorm:"default:1" json:"max_associations"`

	Timezone string `gorm:"type:varchar(50);default:'UTC'" json:"timezone" validate:"max=50"`
	Locale   string `gorm:"type:varchar(10);default:'en-US'" json:"locale" validate:"max=10"`

	AccountStatus string    `gorm:"type:varchar(20);default:'active';index" json:"account_status" validate:"oneof=active suspended closed"`
	IsActive      bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TenantAccount) TableName() string {
	return "accounts_tenant_account"
}

// Validate enforces tenant invariants. The primary contact requirement only
// applies once the tenant has an identity, so the two-phase create protocol
// can persist the tenant before its first contact exists.
func (t *TenantAccount) Validate() error {
	v := validator.New()
	if err := v.Struct(t); err != nil {
		return err
	}
	if t.ID != 0 && t.PrimaryContactID == nil {
		return NewValidationError("primary_contact", "primary contact is required")
	}
	if t.PrimaryContact != nil && !t.PrimaryContact.IsActive {
		return NewValidationError("primary_contact", "primary contact must be active")
	}
	return nil
}

// SubscriptionStatus reports "active" or "expired". A nil end date means an
// indefinite subscription.
func (t *TenantAccount) SubscriptionStatus() string {
	if t.SubscriptionEndDate == nil {
		return "active"
	}
	if t.SubscriptionEndDate.After(time.Now()) {
		return "active"
	}
	return "expired"
}

const (
	TenantContactRolePrimary = "primary"
	TenantContactRoleAdmin   = "admin"
)

// TenantAccountContact links additional contacts to a tenant account with a
// role. One row per (account, contact) pair.
type TenantAccountContact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID uint      `gorm:"uniqueIndex:idx_tenant_contact;index" json:"account_id" validate:"required"`
	ContactID uint      `gorm:"uniqueIndex:idx_tenant_contact" json:"contact_id" validate:"required"`
	Role      string    `gorm:"type:varchar(50);default:'admin'" json:"role" validate:"oneof=primary admin"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	AddedDate time.Time `gorm:"autoCreateTime" json:"added_date"`
}

func (TenantAccountContact) TableName() string {
	return "accounts_tenant_account_contact"
}

func (c *TenantAccountContact) Validate() error {
	v := validator.New()
	return v.Struct(c)
}
