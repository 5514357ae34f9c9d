package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/scope"
)

// memberAccountRepository implements the MemberAccountRepository interface.
type memberAccountRepository struct {
	db *gorm.DB
}

// NewMemberAccountRepository creates a new member account repository instance.
func NewMemberAccountRepository(db *gorm.DB) MemberAccountRepository {
	return &memberAccountRepository{db: db}
}

func (r *memberAccountRepository) scoped(ctx context.Context) *gorm.DB {
	return r.db.Scopes(scope.Tenant(ctx, models.MemberAccount{}))
}

// Create validates the member and enforces the tenant's member quota against
// the unscoped store before persisting.
func (r *memberAccountRepository) Create(ctx context.Context, member *models.MemberAccount) error {
	if err := member.Validate(); err != nil {
		return err
	}

	var tenant models.TenantAccount
	if err := r.db.First(&tenant, member.TenantID).Error; err != nil {
		return fmt.Errorf("member tenant lookup: %w", err)
	}
	var count int64
	err := r.db.Model(&models.MemberAccount{}).
		Where("tenant_id = ? AND is_active = ?", tenant.ID, true).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count >= int64(tenant.MaxMemberAccounts) {
		return fmt.Errorf("%w: maximum %d member accounts allowed", models.ErrQuotaExceeded, tenant.MaxMemberAccounts)
	}

	return models.TranslateDBError(r.db.Create(member).Error)
}

func (r *memberAccountRepository) GetByID(ctx context.Context, id uint) (*models.MemberAccount, error) {
	var member models.MemberAccount
	if err := r.scoped(ctx).Preload("MemberContact").First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberAccountRepository) GetByMembershipNumber(ctx context.Context, number string) (*models.MemberAccount, error) {
	var member models.MemberAccount
	err := r.scoped(ctx).Preload("MemberContact").
		Where("membership_number = ?", number).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberAccountRepository) GetByContactID(ctx context.Context, contactID uint) (*models.MemberAccount, error) {
	var member models.MemberAccount
	err := r.scoped(ctx).Where("member_contact_id = ?", contactID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberAccountRepository) Update(ctx context.Context, member *models.MemberAccount) error {
	if err := member.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Save(member).Error)
}

func (r *memberAccountRepository) Delete(ctx context.Context, id uint) error {
	return r.scoped(ctx).Delete(&models.MemberAccount{}, id).Error
}

func (r *memberAccountRepository) List(ctx context.Context, offset, limit int) ([]models.MemberAccount, error) {
	var members []models.MemberAccount
	err := r.scoped(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&members).Error
	return members, err
}

// ListByStatus filters by the derived membership status. The end-date
// boundary is inclusive on the active side: a membership ending today is
// active, not expired.
func (r *memberAccountRepository) ListByStatus(ctx context.Context, status string) ([]models.MemberAccount, error) {
	today := startOfDay(time.Now())
	q := r.scoped(ctx)

	switch status {
	case models.MemberStatusInactive:
		q = q.Where("is_active = ?", false)
	case models.MemberStatusExpired:
		q = q.Where("is_active = ? AND membership_end_date IS NOT NULL AND membership_end_date < ?", true, today)
	case models.MemberStatusActive:
		q = q.Where("is_active = ?", true).
			Where("membership_end_date IS NULL OR membership_end_date >= ?", today)
	default:
		return []models.MemberAccount{}, nil
	}

	var members []models.MemberAccount
	err := q.Find(&members).Error
	return members, err
}

func (r *memberAccountRepository) ListByType(ctx context.Context, membershipType string) ([]models.MemberAccount, error) {
	var members []models.MemberAccount
	err := r.scoped(ctx).Where("membership_type = ?", membershipType).Find(&members).Error
	return members, err
}

// ListExpiringSoon returns active members whose membership ends within the
// given number of days.
func (r *memberAccountRepository) ListExpiringSoon(ctx context.Context, days int) ([]models.MemberAccount, error) {
	today := startOfDay(time.Now())
	horizon := today.AddDate(0, 0, days)

	var members []models.MemberAccount
	err := r.scoped(ctx).
		Where("is_active = ? AND membership_end_date >= ? AND membership_end_date <= ?", true, today, horizon).
		Find(&members).Error
	return members, err
}

func (r *memberAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.scoped(ctx).Model(&models.MemberAccount{}).Count(&count).Error
	return count, err
}

func (r *memberAccountRepository) ListAll(offset, limit int) ([]models.MemberAccount, error) {
	var members []models.MemberAccount
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&members).Error
	return members, err
}

func (r *memberAccountRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.MemberAccount{}).Count(&count).Error
	return count, err
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
