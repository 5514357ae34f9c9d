package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Contact is a natural person's profile. Email addresses are unique within a
// tenant, not globally, so the same person can exist under several tenants.
type Contact struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"type:varchar(50);index" json:"first_name" validate:"required,max=50"`
	LastName     string    `gorm:"type:varchar(50);index" json:"last_name" validate:"required,max=50"`
	DateOfBirth  time.Time `gorm:"type:date" json:"date_of_birth" validate:"required"`
	Address      string    `gorm:"type:text" json:"address"`
	MobileNumber string    `gorm:"type:varchar(20)" json:"mobile_number" validate:"max=20"`
	Email        string    `gorm:"type:varchar(200);uniqueIndex:idx_contact_tenant_email" json:"email" validate:"required,email,max=200"`

	// Emergency contact
	EmergencyContactName         string `gorm:"type:varchar(100)" json:"emergency_contact_name" validate:"max=100"`
	EmergencyContactPhone        string `gorm:"type:varchar(20)" json:"emergency_contact_phone" validate:"max=20"`
	EmergencyContactRelationship string `gorm:"type:varchar(50)" json:"emergency_contact_relationship" validate:"max=50"`

	// Medical information kept for training safety
	MedicalConditions    string     `gorm:"type:text" json:"medical_conditions"`
	MedicalClearanceDate *time.Time `gorm:"type:date" json:"medical_clearance_date"`

	// Tenant and organization associations. TenantID is part of the
	// per-tenant email uniqueness constraint.
	TenantID       *uint `gorm:"index;uniqueIndex:idx_contact_tenant_email" json:"tenant_id"`
	OrganizationID *uint `gorm:"index" json:"organization_id"`

	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Contact) TableName() string {
	return "people_contacts"
}

// TenantColumn implements TenantScoped.
func (Contact) TenantColumn() string {
	return "tenant_id"
}

// OrganizationColumn implements OrganizationScoped.
func (Contact) OrganizationColumn() string {
	return "organization_id"
}

// FullName returns the formatted full name.
func (c *Contact) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Age calculates the current age from the date of birth.
func (c *Contact) Age() int {
	now := time.Now()
	age := now.Year() - c.DateOfBirth.Year()
	if now.Month() < c.DateOfBirth.Month() ||
		(now.Month() == c.DateOfBirth.Month() && now.Day() < c.DateOfBirth.Day()) {
		age--
	}
	return age
}

func (c *Contact) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	if !c.DateOfBirth.Before(startOfToday()) {
		return NewValidationError("date_of_birth", "date of birth must be in the past")
	}
	return nil
}

// startOfToday returns midnight of the current day in local time. Date-only
// fields compare against this so a birth date of "today" is rejected.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
