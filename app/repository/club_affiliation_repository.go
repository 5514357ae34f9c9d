package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/scope"
)

// clubAffiliationRepository implements the ClubAffiliationRepository
// interface. Affiliations are tenant-scoped through the primary club.
type clubAffiliationRepository struct {
	db *gorm.DB
}

// NewClubAffiliationRepository creates a new club affiliation repository instance.
func NewClubAffiliationRepository(db *gorm.DB) ClubAffiliationRepository {
	return &clubAffiliationRepository{db: db}
}

func (r *clubAffiliationRepository) scoped(ctx context.Context) *gorm.DB {
	return r.db.Scopes(scope.ClubTenant(ctx, models.ClubAffiliation{}))
}

// Create checks both clubs share a tenant and that no reverse affiliation
// already exists before persisting.
func (r *clubAffiliationRepository) Create(ctx context.Context, affiliation *models.ClubAffiliation) error {
	if err := affiliation.Validate(); err != nil {
		return err
	}

	var primary, secondary models.Club
	if err := r.db.First(&primary, affiliation.ClubPrimaryID).Error; err != nil {
		return fmt.Errorf("primary club lookup: %w", err)
	}
	if err := r.db.First(&secondary, affiliation.ClubSecondaryID).Error; err != nil {
		return fmt.Errorf("secondary club lookup: %w", err)
	}
	if primary.TenantID != secondary.TenantID {
		return models.NewValidationError("club_secondary", "affiliated clubs must belong to the same tenant")
	}

	var reverse int64
	err := r.db.Model(&models.ClubAffiliation{}).
		Where("club_primary_id = ? AND club_secondary_id = ?", affiliation.ClubSecondaryID, affiliation.ClubPrimaryID).
		Count(&reverse).Error
	if err != nil {
		return err
	}
	if reverse > 0 {
		return models.NewValidationError("club_secondary", "reverse affiliation already exists")
	}

	return models.TranslateDBError(r.db.Create(affiliation).Error)
}

func (r *clubAffiliationRepository) GetByID(ctx context.Context, id uint) (*models.ClubAffiliation, error) {
	var affiliation models.ClubAffiliation
	if err := r.scoped(ctx).First(&affiliation, id).Error; err != nil {
		return nil, err
	}
	return &affiliation, nil
}

func (r *clubAffiliationRepository) Delete(ctx context.Context, id uint) error {
	return r.scoped(ctx).Delete(&models.ClubAffiliation{}, id).Error
}

func (r *clubAffiliationRepository) List(ctx context.Context, offset, limit int) ([]models.ClubAffiliation, error) {
	var affiliations []models.ClubAffiliation
	err := r.scoped(ctx).
		Order("established_at").
		Offset(offset).Limit(limit).
		Find(&affiliations).Error
	return affiliations, err
}
