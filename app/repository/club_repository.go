package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/scope"
)

// clubRepository implements the ClubRepository interface.
type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository instance.
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) scoped(ctx context.Context) *gorm.DB {
	return r.db.Scopes(scope.Tenant(ctx, models.Club{}))
}

// Create validates the club, then checks name uniqueness and the tenant's
// club quota. Both checks run against the unscoped store so a caller's
// context can never skew the counts.
func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	if err := club.Validate(); err != nil {
		return err
	}

	var nameCount int64
	err := r.db.Model(&models.Club{}).
		Where("tenant_id = ? AND name = ?", club.TenantID, club.Name).
		Count(&nameCount).Error
	if err != nil {
		return err
	}
	if nameCount > 0 {
		return models.NewValidationError("name", "club name already exists in this tenant")
	}

	var tenant models.TenantAccount
	if err := r.db.First(&tenant, club.TenantID).Error; err != nil {
		return fmt.Errorf("club tenant lookup: %w", err)
	}
	if tenant.MaxClubs > 0 {
		var count int64
		err := r.db.Model(&models.Club{}).
			Where("tenant_id = ?", club.TenantID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count >= int64(tenant.MaxClubs) {
			return fmt.Errorf("%w: maximum %d clubs allowed", models.ErrQuotaExceeded, tenant.MaxClubs)
		}
	}

	return models.TranslateDBError(r.db.Create(club).Error)
}

func (r *clubRepository) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	var club models.Club
	if err := r.scoped(ctx).First(&club, id).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetBySlug(ctx context.Context, slug string) (*models.Club, error) {
	var club models.Club
	if err := r.scoped(ctx).Where("slug = ?", slug).First(&club).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) Update(ctx context.Context, club *models.Club) error {
	if err := club.Validate(); err != nil {
		return err
	}
	var nameCount int64
	err := r.db.Model(&models.Club{}).
		Where("tenant_id = ? AND name = ? AND id <> ?", club.TenantID, club.Name, club.ID).
		Count(&nameCount).Error
	if err != nil {
		return err
	}
	if nameCount > 0 {
		return models.NewValidationError("name", "club name already exists in this tenant")
	}
	return models.TranslateDBError(r.db.Save(club).Error)
}

func (r *clubRepository) Delete(ctx context.Context, id uint) error {
	return r.scoped(ctx).Delete(&models.Club{}, id).Error
}

func (r *clubRepository) List(ctx context.Context, offset, limit int) ([]models.Club, error) {
	var clubs []models.Club
	err := r.scoped(ctx).Order("name").Offset(offset).Limit(limit).Find(&clubs).Error
	return clubs, err
}

func (r *clubRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.scoped(ctx).Model(&models.Club{}).Count(&count).Error
	return count, err
}

func (r *clubRepository) ListAll(offset, limit int) ([]models.Club, error) {
	var clubs []models.Club
	err := r.db.Order("name").Offset(offset).Limit(limit).Find(&clubs).Error
	return clubs, err
}

func (r *clubRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Club{}).Count(&count).Error
	return count, err
}
