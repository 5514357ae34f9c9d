package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	PermissionMember = "member"
	PermissionStaff  = "staff"
	PermissionOwner  = "owner"
	PermissionAdmin  = "admin"
)

// UserProfile is the canonical login identity: credentials plus club
// management permissions, linked one-to-one with a Contact.
type UserProfile struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,max=200"`
	PasswordHash string `gorm:"type:text" json:"-"`

	ContactID uint    `gorm:"uniqueIndex" json:"contact_id" validate:"required"`
	Contact   Contact `gorm:"constraint:OnDelete:CASCADE" json:"contact"`

	IsSuperuser      bool   `gorm:"default:false" json:"is_superuser"`
	PermissionsLevel string `gorm:"type:varchar(20);default:'member';index" json:"permissions_level" validate:"oneof=member staff owner admin"`
	IsClubOwner      bool   `gorm:"default:false;index" json:"is_club_owner"`
	CanCreateClubs   bool   `gorm:"default:false" json:"can_create_clubs"`
	CanManageMembers bool   `gorm:"default:false" json:"can_manage_members"`

	LastLoginAttempt *time.Time `gorm:"type:timestamp" json:"last_login_attempt"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "people_user_profiles"
}

// Validate checks field rules and applies the documented permission
// auto-corrections: club owners get at least owner level, admin level
// force-sets the ownership and capability flags.
func (p *UserProfile) Validate() error {
	if p.IsClubOwner && p.PermissionsLevel != PermissionOwner && p.PermissionsLevel != PermissionAdmin {
		p.PermissionsLevel = PermissionOwner
	}
	if p.PermissionsLevel == PermissionAdmin {
		p.IsClubOwner = true
		p.CanCreateClubs = true
		p.CanManageMembers = true
	}

	v := validator.New()
	return v.Struct(p)
}

// SetPassword hashes and stores a new password.
func (p *UserProfile) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a password against the stored hash.
func (p *UserProfile) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
}

// IsSystemAdmin reports whether the profile holds system-wide admin rights.
func (p *UserProfile) IsSystemAdmin() bool {
	return p.IsSuperuser || p.PermissionsLevel == PermissionAdmin
}

// CanAccessTenant reports whether this user may act within the given tenant.
// Superusers may access any tenant; everyone else is bound to the tenant of
// their contact record.
func (p *UserProfile) CanAccessTenant(tenant *TenantAccount) bool {
	if tenant == nil {
		return false
	}
	if p.IsSuperuser {
		return true
	}
	return p.Contact.TenantID != nil && *p.Contact.TenantID == tenant.ID
}

// HasClubPermissions reports whether the user has any club management rights.
func (p *UserProfile) HasClubPermissions() bool {
	return p.IsClubOwner || p.IsSystemAdmin() || p.CanManageMembers
}
