package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StaffRoleOwner      = "owner"
	StaffRoleAdmin      = "admin"
	StaffRoleInstructor = "instructor"
	StaffRoleAssistant  = "assistant"
)

// ClubStaff links a Contact to a Club with a role and capability flags. One
// assignment per (club, contact) pair. Tenant isolation is derived through
// the club parent.
type ClubStaff struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ClubID    uint    `gorm:"uniqueIndex:idx_staff_club_contact;index" json:"club_id" validate:"required"`
	Club      Club    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ContactID uint    `gorm:"uniqueIndex:idx_staff_club_contact;index" json:"contact_id" validate:"required"`
	Contact   Contact `gorm:"constraint:OnDelete:CASCADE" json:"contact,omitempty"`

	// Optional link to an external organization-membership record.
	OrganizationUserID *uint `gorm:"uniqueIndex" json:"organization_user_id"`

	Role        string `gorm:"type:varchar(20);default:'instructor';index" json:"role" validate:"oneof=owner admin instructor assistant"`
	Title       string `gorm:"type:varchar(100)" json:"title" validate:"max=100"`
	Bio         string `gorm:"type:text" json:"bio"`
	Specialties string `gorm:"type:text" json:"specialties"`

	IsActive          bool `gorm:"default:true;index" json:"is_active"`
	CanManageMembers  bool `gorm:"default:false" json:"can_manage_members"`
	CanManageSchedule bool `gorm:"default:false" json:"can_manage_schedule"`
	CanViewFinances   bool `gorm:"default:false" json:"can_view_finances"`

	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClubStaff) TableName() string {
	return "clubs_clubstaff"
}

// ClubColumn implements ClubScoped.
func (ClubStaff) ClubColumn() string {
	return "club_id"
}

// Validate applies the role capability elevation before checking field rules:
// owners get every flag, admins get member and schedule management. This is a
// documented auto-correction, not a failure.
func (s *ClubStaff) Validate() error {
	switch s.Role {
	case StaffRoleOwner:
		s.CanManageMembers = true
		s.CanManageSchedule = true
		s.CanViewFinances = true
	case StaffRoleAdmin:
		s.CanManageMembers = true
		s.CanManageSchedule = true
	}

	v := validator.New()
	return v.Struct(s)
}

// PermissionHierarchyLevel orders staff roles for management checks.
func (s *ClubStaff) PermissionHierarchyLevel() int {
	switch s.Role {
	case StaffRoleOwner:
		return 80
	case StaffRoleAdmin:
		return 70
	case StaffRoleInstructor:
		return 50
	case StaffRoleAssistant:
		return 30
	}
	return 10
}

// CanManageStaffMember reports whether this assignment outranks another in
// the same club.
func (s *ClubStaff) CanManageStaffMember(other *ClubStaff) bool {
	if other == nil || other.ClubID != s.ClubID {
		return false
	}
	return s.PermissionHierarchyLevel() > other.PermissionHierarchyLevel()
}
