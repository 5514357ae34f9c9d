package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MembershipStudent    = "student"
	MembershipInstructor = "instructor"
	MembershipHonorary   = "honorary"
	MembershipLifetime   = "lifetime"

	MemberStatusActive   = "active"
	MemberStatusExpired  = "expired"
	MemberStatusInactive = "inactive"
)

// MemberAccount is an individual member within a tenant, linked one-to-one
// with a Contact and owned by exactly one TenantAccount.
type MemberAccount struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	TenantID uint          `gorm:"index;not null" json:"tenant_id" validate:"required"`
	Tenant   TenantAccount `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	// One member account per contact. Deleting the contact deletes the
	// member account.
	MemberContactID uint    `gorm:"uniqueIndex" json:"member_contact_id" validate:"required"`
	MemberContact   Contact `gorm:"foreignKey:MemberContactID;constraint:OnDelete:CASCADE" json:"member_contact,omitempty"`

	// Primary contact must equal the member contact; Validate auto-assigns
	// it when absent.
	PrimaryContactID *uint  `gorm:"index" json:"primary_contact_id"`
	BillingContactID *uint  `json:"billing_contact_id"`
	BillingEmail     string `gorm:"type:varchar(200)" json:"billing_email" validate:"omitempty,email,max=200"`

	MembershipNumber    string     `gorm:"type:varchar(50);uniqueIndex" json:"membership_number" validate:"required,max=50"`
	MembershipType      string     `gorm:"type:varchar(50);default:'student';index" json:"membership_type" validate:"oneof=student instructor honorary lifetime"`
	MembershipStartDate time.Time  `gorm:"type:date;index" json:"membership_start_date" validate:"required"`
	MembershipEndDate   *time.Time `gorm:"type:date;index" json:"membership_end_date"`

	AccountStatus string    `gorm:"type:varchar(20);default:'active';index" json:"account_status" validate:"oneof=active suspended closed"`
	IsActive      bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MemberAccount) TableName() string {
	return "accounts_member_account"
}

// TenantColumn implements TenantScoped.
func (MemberAccount) TenantColumn() string {
	return "tenant_id"
}

// Validate enforces member invariants. The primary contact is auto-assigned
// from the member contact when absent; this is one of the documented
// auto-corrections rather than a failure.
func (m *MemberAccount) Validate() error {
	if m.PrimaryContactID == nil && m.MemberContactID != 0 {
		id := m.MemberContactID
		m.PrimaryContactID = &id
	}
	if m.PrimaryContactID != nil && *m.PrimaryContactID != m.MemberContactID {
		return NewValidationError("primary_contact", "primary contact must be the same as member contact")
	}
	if m.MembershipEndDate != nil && !m.MembershipEndDate.After(m.MembershipStartDate) {
		return NewValidationError("membership_end_date", "end date must be after start date")
	}

	v := validator.New()
	return v.Struct(m)
}

// IsMembershipActive reports whether the membership period is current. The
// end date boundary is inclusive: a membership ending today is still active.
func (m *MemberAccount) IsMembershipActive() bool {
	if m.MembershipEndDate == nil {
		return true
	}
	return !m.MembershipEndDate.Before(startOfToday())
}

// MembershipStatus derives the readable status: inactive members first, then
// expired, otherwise active.
func (m *MemberAccount) MembershipStatus() string {
	if !m.IsActive {
		return MemberStatusInactive
	}
	if !m.IsMembershipActive() {
		return MemberStatusExpired
	}
	return MemberStatusActive
}
