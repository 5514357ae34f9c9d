package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ClubMemberActive    = "active"
	ClubMemberInactive  = "inactive"
	ClubMemberSuspended = "suspended"
	ClubMemberPending   = "pending"
)

// ClubMember links a MemberAccount to a Club with a per-club status. The
// member account and the club must belong to the same tenant; the repository
// verifies this before persisting. Tenant isolation is derived through the
// club parent.
type ClubMember struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	ClubID          uint          `gorm:"uniqueIndex:idx_clubmember_club_member;index" json:"club_id" validate:"required"`
	Club            Club          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MemberAccountID uint          `gorm:"uniqueIndex:idx_clubmember_club_member;index" json:"member_account_id" validate:"required"`
	MemberAccount   MemberAccount `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	// Auto-generated as "{clubID}-{id}" after the first save when blank.
	MembershipNumber string `gorm:"type:varchar(50);index" json:"membership_number" validate:"max=50"`
	Status           string `gorm:"type:varchar(20);default:'active';index" json:"status" validate:"oneof=active inactive suspended pending"`

	JoinedDate      time.Time  `gorm:"type:date;autoCreateTime" json:"joined_date"`
	RenewalDate     *time.Time `gorm:"type:date" json:"renewal_date"`
	LastPaymentDate *time.Time `gorm:"type:date" json:"last_payment_date"`

	EmergencyContactName         string `gorm:"type:varchar(100)" json:"emergency_contact_name" validate:"max=100"`
	EmergencyContactPhone        string `gorm:"type:varchar(20)" json:"emergency_contact_phone" validate:"max=20"`
	EmergencyContactRelationship string `gorm:"type:varchar(50)" json:"emergency_contact_relationship" validate:"max=50"`

	MedicalConditions    string     `gorm:"type:text" json:"medical_conditions"`
	MedicalClearanceDate *time.Time `gorm:"type:date" json:"medical_clearance_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClubMember) TableName() string {
	return "clubs_clubmember"
}

// ClubColumn implements ClubScoped.
func (ClubMember) ClubColumn() string {
	return "club_id"
}

func (m *ClubMember) Validate() error {
	v := validator.New()
	return v.Struct(m)
}

// GeneratedMembershipNumber builds the default per-club membership number.
// Requires a persisted row since it embeds the record ID.
func (m *ClubMember) GeneratedMembershipNumber() string {
	return fmt.Sprintf("%d-%d", m.ClubID, m.ID)
}
