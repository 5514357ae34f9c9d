package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Club is a tenant-scoped organization. Club names are unique per tenant and
// creation is bounded by the tenant's club quota; both rules are enforced in
// the repository against the unscoped store.
type Club struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	TenantID uint          `gorm:"uniqueIndex:idx_club_tenant_name;not null" json:"tenant_id" validate:"required"`
	Tenant   TenantAccount `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name        string     `gorm:"type:varchar(200);uniqueIndex:idx_club_tenant_name" json:"name" validate:"required,max=200"`
	Slug        string     `gorm:"type:varchar(200);index" json:"slug" validate:"required,max=200"`
	Description string     `gorm:"type:text" json:"description"`
	FoundedDate *time.Time `gorm:"type:date;index" json:"founded_date"`

	Phone   string `gorm:"type:varchar(20)" json:"phone" validate:"max=20"`
	Email   string `gorm:"type:varchar(200)" json:"email" validate:"omitempty,email,max=200"`
	Website string `gorm:"type:varchar(255)" json:"website" validate:"omitempty,url,max=255"`

	AddressLine1 string `gorm:"type:varchar(255)" json:"address_line1" validate:"max=255"`
	AddressLine2 string `gorm:"type:varchar(255)" json:"address_line2" validate:"max=255"`
	City         string `gorm:"type:varchar(100)" json:"city" validate:"max=100"`
	State        string `gorm:"type:varchar(100)" json:"state" validate:"max=100"`
	PostalCode   string `gorm:"type:varchar(20)" json:"postal_code" validate:"max=20"`
	Country      string `gorm:"type:varchar(100);default:'United States'" json:"country" validate:"max=100"`

	FacebookURL     string `gorm:"type:varchar(255)" json:"facebook_url" validate:"omitempty,url"`
	InstagramHandle string `gorm:"type:varchar(100)" json:"instagram_handle" validate:"max=100"`
	TwitterHandle   string `gorm:"type:varchar(100)" json:"twitter_handle" validate:"max=100"`
	YoutubeURL      string `gorm:"type:varchar(255)" json:"youtube_url" validate:"omitempty,url"`
	LinkedinURL     string `gorm:"type:varchar(255)" json:"linkedin_url" validate:"omitempty,url"`

	IsPublic   bool  `gorm:"default:true" json:"is_public"`
	MaxMembers *uint `json:"max_members"`

	DeletedAt *time.Time `gorm:"type:timestamp" json:"-"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Club) TableName() string {
	return "clubs_club"
}

// TenantColumn implements TenantScoped.
func (Club) TenantColumn() string {
	return "tenant_id"
}

func (c *Club) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	if strings.HasPrefix(c.InstagramHandle, "@") {
		return NewValidationError("instagram_handle", "handle should not start with '@'")
	}
	if strings.HasPrefix(c.TwitterHandle, "@") {
		return NewValidationError("twitter_handle", "handle should not start with '@'")
	}
	if c.MaxMembers != nil && *c.MaxMembers < 1 {
		return NewValidationError("max_members", "max members must be at least 1")
	}
	return nil
}
