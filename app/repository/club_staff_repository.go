package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/scope"
)

// clubStaffRepository implements the ClubStaffRepository interface. Staff
// assignments have no tenant column; isolation is derived through the club
// parent, with the additional staff-visibility narrowing for regular users.
type clubStaffRepository struct {
	db *gorm.DB
}

// NewClubStaffRepository creates a new club staff repository instance.
func NewClubStaffRepository(db *gorm.DB) ClubStaffRepository {
	return &clubStaffRepository{db: db}
}

func (r *clubStaffRepository) scoped(ctx context.Context) *gorm.DB {
	m := models.ClubStaff{}
	return r.db.Scopes(scope.ClubTenant(ctx, m), scope.StaffVisibility(ctx, m))
}

func (r *clubStaffRepository) Create(ctx context.Context, staff *models.ClubStaff) error {
	if err := staff.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Create(staff).Error)
}

func (r *clubStaffRepository) GetByID(ctx context.Context, id uint) (*models.ClubStaff, error) {
	var staff models.ClubStaff
	if err := r.scoped(ctx).Preload("Contact").First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *clubStaffRepository) Update(ctx context.Context, staff *models.ClubStaff) error {
	if err := staff.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Save(staff).Error)
}

func (r *clubStaffRepository) Delete(ctx context.Context, id uint) error {
	return r.scoped(ctx).Delete(&models.ClubStaff{}, id).Error
}

func (r *clubStaffRepository) List(ctx context.Context, offset, limit int) ([]models.ClubStaff, error) {
	var staff []models.ClubStaff
	err := r.scoped(ctx).
		Order("role, assigned_at").
		Offset(offset).Limit(limit).
		Find(&staff).Error
	return staff, err
}

func (r *clubStaffRepository) ListByClub(ctx context.Context, clubID uint) ([]models.ClubStaff, error) {
	var staff []models.ClubStaff
	err := r.scoped(ctx).
		Where("club_id = ? AND is_active = ?", clubID, true).
		Order("role, assigned_at").
		Find(&staff).Error
	return staff, err
}

// ListActiveByContact is unscoped: it backs the staff-visibility filter and
// entitlement checks, which must not recurse into context filtering.
func (r *clubStaffRepository) ListActiveByContact(contactID uint) ([]models.ClubStaff, error) {
	var staff []models.ClubStaff
	err := r.db.Where("contact_id = ? AND is_active = ?", contactID, true).Find(&staff).Error
	return staff, err
}

func (r *clubStaffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.scoped(ctx).Model(&models.ClubStaff{}).Count(&count).Error
	return count, err
}

func (r *clubStaffRepository) ListAll(offset, limit int) ([]models.ClubStaff, error) {
	var staff []models.ClubStaff
	err := r.db.Order("role, assigned_at").Offset(offset).Limit(limit).Find(&staff).Error
	return staff, err
}
