package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/scope"
	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
)

// paymentHistoryRepository implements the PaymentHistoryRepository
// interface. Payments attach to either a tenant account or a member account
// through the tagged (account_type, account_id) pair; tenant narrowing
// resolves that pair back to its owning tenant.
type paymentHistoryRepository struct {
	db *gorm.DB
}

// NewPaymentHistoryRepository creates a new payment history repository instance.
func NewPaymentHistoryRepository(db *gorm.DB) PaymentHistoryRepository {
	return &paymentHistoryRepository{db: db}
}

func (r *paymentHistoryRepository) scoped(ctx context.Context) *gorm.DB {
	return r.db.Scopes(scope.PaymentTenant(ctx))
}

// accountTenantID returns the tenant that owns a resolved payment account.
func accountTenantID(account *PaymentAccount) uint {
	if account.Tenant != nil {
		return account.Tenant.ID
	}
	return account.Member.TenantID
}

// checkAccountAccess verifies the tagged account exists and, when a tenant
// context is set, belongs to that tenant. A foreign account is reported
// exactly like a missing one.
func (r *paymentHistoryRepository) checkAccountAccess(ctx context.Context, payment *models.PaymentHistory) error {
	account, err := r.ResolveAccount(payment)
	if err != nil {
		return err
	}
	if id, ok := tenantctx.TenantIDFrom(ctx); ok && accountTenantID(account) != id {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *paymentHistoryRepository) Create(ctx context.Context, payment *models.PaymentHistory) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	// The tagged reference must point at a real account of the tagged kind,
	// within the caller's tenant.
	if err := r.checkAccountAccess(ctx, payment); err != nil {
		return err
	}
	// Manually recorded payments get a reference too, so every record can be
	// traced in exports.
	if payment.TransactionReference == "" {
		payment.TransactionReference = uuid.NewString()
	}
	return models.TranslateDBError(r.db.Create(payment).Error)
}

func (r *paymentHistoryRepository) GetByID(ctx context.Context, id uint) (*models.PaymentHistory, error) {
	var payment models.PaymentHistory
	if err := r.scoped(ctx).First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentHistoryRepository) Update(ctx context.Context, payment *models.PaymentHistory) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	// Re-check in case the update re-targets the account reference.
	if err := r.checkAccountAccess(ctx, payment); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Save(payment).Error)
}

func (r *paymentHistoryRepository) Delete(ctx context.Context, id uint) error {
	return r.scoped(ctx).Delete(&models.PaymentHistory{}, id).Error
}

func (r *paymentHistoryRepository) ListForAccount(ctx context.Context, accountType models.PaymentAccountType, accountID uint, offset, limit int) ([]models.PaymentHistory, error) {
	var payments []models.PaymentHistory
	err := r.scoped(ctx).
		Where("account_type = ? AND account_id = ?", accountType, accountID).
		Order("payment_date DESC").
		Offset(offset).Limit(limit).
		Find(&payments).Error
	return payments, err
}

func (r *paymentHistoryRepository) TotalCompletedForAccount(ctx context.Context, accountType models.PaymentAccountType, accountID uint) (float64, error) {
	var total float64
	err := r.scoped(ctx).Model(&models.PaymentHistory{}).
		Where("account_type = ? AND account_id = ? AND payment_status = ?", accountType, accountID, models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum completed payments: %w", err)
	}
	return total, nil
}

func (r *paymentHistoryRepository) CountCompletedForAccount(ctx context.Context, accountType models.PaymentAccountType, accountID uint) (int64, error) {
	var count int64
	err := r.scoped(ctx).Model(&models.PaymentHistory{}).
		Where("account_type = ? AND account_id = ? AND payment_status = ?", accountType, accountID, models.PaymentStatusCompleted).
		Count(&count).Error
	return count, err
}

// ResolveAccount loads the account the payment is attached to. The switch is
// exhaustive over the closed set of account kinds. Deliberately unscoped: it
// backs the access check itself.
func (r *paymentHistoryRepository) ResolveAccount(payment *models.PaymentHistory) (*PaymentAccount, error) {
	switch payment.AccountType {
	case models.PaymentAccountTenant:
		var tenant models.TenantAccount
		if err := r.db.First(&tenant, payment.AccountID).Error; err != nil {
			return nil, err
		}
		return &PaymentAccount{Tenant: &tenant}, nil
	case models.PaymentAccountMember:
		var member models.MemberAccount
		if err := r.db.First(&member, payment.AccountID).Error; err != nil {
			return nil, err
		}
		return &PaymentAccount{Member: &member}, nil
	default:
		return nil, models.NewValidationError("account_type", fmt.Sprintf("unknown account type %q", payment.AccountType))
	}
}
