package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/scope"
)

// clubMemberRepository implements the ClubMemberRepository interface.
type clubMemberRepository struct {
	db *gorm.DB
}

// NewClubMemberRepository creates a new club member repository instance.
func NewClubMemberRepository(db *gorm.DB) ClubMemberRepository {
	return &clubMemberRepository{db: db}
}

func (r *clubMemberRepository) scoped(ctx context.Context) *gorm.DB {
	m := models.ClubMember{}
	return r.db.Scopes(scope.ClubTenant(ctx, m), scope.StaffVisibility(ctx, m))
}

// Create verifies the member account and club belong to the same tenant,
// persists the membership, then backfills the generated membership number
// when none was supplied. The number embeds the record ID, so it can only be
// assigned after the first insert.
func (r *clubMemberRepository) Create(ctx context.Context, membership *models.ClubMember) error {
	if err := membership.Validate(); err != nil {
		return err
	}

	var club models.Club
	if err := r.db.First(&club, membership.ClubID).Error; err != nil {
		return fmt.Errorf("club lookup: %w", err)
	}
	var member models.MemberAccount
	if err := r.db.First(&member, membership.MemberAccountID).Error; err != nil {
		return fmt.Errorf("member account lookup: %w", err)
	}
	if member.TenantID != club.TenantID {
		return models.NewValidationError("member_account", "member account and club must be in same tenant")
	}

	return models.TranslateDBError(r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(membership).Error; err != nil {
			return err
		}
		if membership.MembershipNumber == "" {
			membership.MembershipNumber = membership.GeneratedMembershipNumber()
			return tx.Model(membership).Update("membership_number", membership.MembershipNumber).Error
		}
		return nil
	}))
}

func (r *clubMemberRepository) GetByID(ctx context.Context, id uint) (*models.ClubMember, error) {
	var membership models.ClubMember
	if err := r.scoped(ctx).First(&membership, id).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *clubMemberRepository) Update(ctx context.Context, membership *models.ClubMember) error {
	if err := membership.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Save(membership).Error)
}

func (r *clubMemberRepository) Delete(ctx context.Context, id uint) error {
	return r.scoped(ctx).Delete(&models.ClubMember{}, id).Error
}

func (r *clubMemberRepository) List(ctx context.Context, offset, limit int) ([]models.ClubMember, error) {
	var memberships []models.ClubMember
	err := r.scoped(ctx).
		Order("joined_date").
		Offset(offset).Limit(limit).
		Find(&memberships).Error
	return memberships, err
}

func (r *clubMemberRepository) ListByClub(ctx context.Context, clubID uint) ([]models.ClubMember, error) {
	var memberships []models.ClubMember
	err := r.scoped(ctx).
		Where("club_id = ?", clubID).
		Order("joined_date").
		Find(&memberships).Error
	return memberships, err
}

func (r *clubMemberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.scoped(ctx).Model(&models.ClubMember{}).Count(&count).Error
	return count, err
}

func (r *clubMemberRepository) ListAll(offset, limit int) ([]models.ClubMember, error) {
	var memberships []models.ClubMember
	err := r.db.Order("joined_date").Offset(offset).Limit(limit).Find(&memberships).Error
	return memberships, err
}
