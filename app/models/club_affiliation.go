package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	AffiliationBranch      = "branch"
	AffiliationPartner     = "partner"
	AffiliationAssociation = "association"
)

// ClubAffiliation records a relationship between two clubs of the same
// tenant. Tenant isolation is derived through the primary club.
type ClubAffiliation struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	ClubPrimaryID   uint `gorm:"uniqueIndex:idx_affiliation_pair;index" json:"club_primary_id" validate:"required"`
	ClubPrimary     Club `gorm:"foreignKey:ClubPrimaryID;constraint:OnDelete:CASCADE" json:"-"`
	ClubSecondaryID uint `gorm:"uniqueIndex:idx_affiliation_pair" json:"club_secondary_id" validate:"required"`
	ClubSecondary   Club `gorm:"foreignKey:ClubSecondaryID;constraint:OnDelete:CASCADE" json:"-"`

	AffiliationType string `gorm:"type:varchar(20);default:'partner';index" json:"affiliation_type" validate:"oneof=branch partner association"`
	Description     string `gorm:"type:text" json:"description"`
	IsActive        bool   `gorm:"default:true;index" json:"is_active"`

	EstablishedAt time.Time `gorm:"autoCreateTime" json:"established_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClubAffiliation) TableName() string {
	return "clubs_clubaffiliation"
}

// ClubColumn implements ClubScoped via the primary club.
func (ClubAffiliation) ClubColumn() string {
	return "club_primary_id"
}

func (a *ClubAffiliation) Validate() error {
	if a.ClubPrimaryID != 0 && a.ClubPrimaryID == a.ClubSecondaryID {
		return NewValidationError("club_secondary", "club cannot affiliate with itself")
	}

	v := validator.New()
	return v.Struct(a)
}
