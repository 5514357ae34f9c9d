package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
)

func tenantPayment(tenantID uint, amount float64, status string) *models.PaymentHistory {
	return &models.PaymentHistory{
		AccountType:   models.PaymentAccountTenant,
		AccountID:     tenantID,
		Amount:        amount,
		Currency:      "USD",
		PaymentDate:   time.Now().Add(-time.Hour),
		PaymentMethod: models.PaymentMethodCard,
		PaymentStatus: status,
		PaymentType:   models.PaymentTypeSubscription,
	}
}

func TestPaymentCreateAssignsTransactionReference(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentHistoryRepository(db)
	tenant := seedTenant(t, db, "dragons")

	payment := tenantPayment(tenant.ID, 49.99, models.PaymentStatusCompleted)
	require.NoError(t, repo.Create(context.Background(), payment))
	assert.NotEmpty(t, payment.TransactionReference)

	// A supplied reference is kept as-is.
	manual := tenantPayment(tenant.ID, 10, models.PaymentStatusCompleted)
	manual.TransactionReference = "wire-2026-001"
	require.NoError(t, repo.Create(context.Background(), manual))
	assert.Equal(t, "wire-2026-001", manual.TransactionReference)
}

func TestPaymentCreateRejectsMissingAccount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentHistoryRepository(db)

	payment := tenantPayment(999, 10, models.PaymentStatusCompleted)
	err := repo.Create(context.Background(), payment)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPaymentCreateRejectsForeignAccount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentHistoryRepository(db)

	t1 := seedTenant(t, db, "dragons")
	t2 := seedTenant(t, db, "tigers")
	foreignMember := seedMember(t, db, t2)

	// A foreign account looks exactly like a missing one.
	err := repo.Create(ctxForTenant(t1), tenantPayment(t2.ID, 10, models.PaymentStatusCompleted))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	memberPayment := tenantPayment(foreignMember.ID, 10, models.PaymentStatusCompleted)
	memberPayment.AccountType = models.PaymentAccountMember
	err = repo.Create(ctxForTenant(t1), memberPayment)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The same writes succeed in the owning tenant.
	assert.NoError(t, repo.Create(ctxForTenant(t2), tenantPayment(t2.ID, 10, models.PaymentStatusCompleted)))
}

func TestPaymentReadsHonorTenantContext(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentHistoryRepository(db)

	t1 := seedTenant(t, db, "dragons")
	t2 := seedTenant(t, db, "tigers")
	member2 := seedMember(t, db, t2)

	mine := tenantPayment(t1.ID, 100, models.PaymentStatusCompleted)
	require.NoError(t, repo.Create(context.Background(), mine))
	foreign := tenantPayment(t2.ID, 200, models.PaymentStatusCompleted)
	require.NoError(t, repo.Create(context.Background(), foreign))
	foreignMember := tenantPayment(member2.ID, 50, models.PaymentStatusCompleted)
	foreignMember.AccountType = models.PaymentAccountMember
	require.NoError(t, repo.Create(context.Background(), foreignMember))

	// Listing a foreign account from tenant 1 yields nothing, not an error.
	payments, err := repo.ListForAccount(ctxForTenant(t1), models.PaymentAccountTenant, t2.ID, 0, 50)
	require.NoError(t, err)
	assert.Empty(t, payments)

	payments, err = repo.ListForAccount(ctxForTenant(t1), models.PaymentAccountMember, member2.ID, 0, 50)
	require.NoError(t, err)
	assert.Empty(t, payments)

	total, err := repo.TotalCompletedForAccount(ctxForTenant(t1), models.PaymentAccountTenant, t2.ID)
	require.NoError(t, err)
	assert.Zero(t, total)

	count, err := repo.CountCompletedForAccount(ctxForTenant(t1), models.PaymentAccountTenant, t2.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Direct lookups behave like missing rows across tenants.
	_, err = repo.GetByID(ctxForTenant(t1), foreign.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.GetByID(ctxForTenant(t1), foreignMember.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The owning tenant and the unset context both see the rows.
	got, err := repo.GetByID(ctxForTenant(t2), foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, foreign.ID, got.ID)
	got, err = repo.GetByID(context.Background(), foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, foreign.ID, got.ID)

	// Member payments of the context tenant stay visible.
	payments, err = repo.ListForAccount(ctxForTenant(t2), models.PaymentAccountMember, member2.ID, 0, 50)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestPaymentDeleteHonorsTenantContext(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentHistoryRepository(db)

	t1 := seedTenant(t, db, "dragons")
	t2 := seedTenant(t, db, "tigers")
	foreign := tenantPayment(t2.ID, 10, models.PaymentStatusCompleted)
	require.NoError(t, repo.Create(context.Background(), foreign))

	require.NoError(t, repo.Delete(ctxForTenant(t1), foreign.ID))

	// The cross-tenant delete was a no-op.
	var count int64
	require.NoError(t, db.Model(&models.PaymentHistory{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPaymentUpdateCannotRetargetForeignAccount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentHistoryRepository(db)

	t1 := seedTenant(t, db, "dragons")
	t2 := seedTenant(t, db, "tigers")
	payment := tenantPayment(t1.ID, 10, models.PaymentStatusCompleted)
	require.NoError(t, repo.Create(ctxForTenant(t1), payment))

	payment.AccountID = t2.ID
	err := repo.Update(ctxForTenant(t1), payment)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPaymentResolveAccount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentHistoryRepository(db)
	tenant := seedTenant(t, db, "dragons")
	member := seedMember(t, db, tenant)

	account, err := repo.ResolveAccount(tenantPayment(tenant.ID, 10, models.PaymentStatusCompleted))
	require.NoError(t, err)
	require.NotNil(t, account.Tenant)
	assert.Nil(t, account.Member)
	assert.Equal(t, tenant.ID, account.Tenant.ID)

	memberPayment := tenantPayment(member.ID, 10, models.PaymentStatusCompleted)
	memberPayment.AccountType = models.PaymentAccountMember
	account, err = repo.ResolveAccount(memberPayment)
	require.NoError(t, err)
	require.NotNil(t, account.Member)
	assert.Nil(t, account.Tenant)

	bad := tenantPayment(tenant.ID, 10, models.PaymentStatusCompleted)
	bad.AccountType = "voucher"
	_, err = repo.ResolveAccount(bad)
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestPaymentTotalsCountOnlyCompleted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentHistoryRepository(db)
	tenant := seedTenant(t, db, "dragons")

	require.NoError(t, repo.Create(context.Background(), tenantPayment(tenant.ID, 100, models.PaymentStatusCompleted)))
	require.NoError(t, repo.Create(context.Background(), tenantPayment(tenant.ID, 50, models.PaymentStatusCompleted)))
	require.NoError(t, repo.Create(context.Background(), tenantPayment(tenant.ID, 25, models.PaymentStatusPending)))
	require.NoError(t, repo.Create(context.Background(), tenantPayment(tenant.ID, 30, models.PaymentStatusFailed)))

	total, err := repo.TotalCompletedForAccount(context.Background(), models.PaymentAccountTenant, tenant.ID)
	require.NoError(t, err)
	assert.InDelta(t, 150, total, 0.001)

	count, err := repo.CountCompletedForAccount(context.Background(), models.PaymentAccountTenant, tenant.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestPaymentListForAccountNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentHistoryRepository(db)
	tenant := seedTenant(t, db, "dragons")
	member := seedMember(t, db, tenant)

	older := tenantPayment(tenant.ID, 10, models.PaymentStatusCompleted)
	older.PaymentDate = time.Now().AddDate(0, -1, 0)
	require.NoError(t, repo.Create(context.Background(), older))

	newer := tenantPayment(tenant.ID, 20, models.PaymentStatusCompleted)
	require.NoError(t, repo.Create(context.Background(), newer))

	// A member payment with the same numeric ID never bleeds in.
	memberPayment := tenantPayment(member.ID, 99, models.PaymentStatusCompleted)
	memberPayment.AccountType = models.PaymentAccountMember
	require.NoError(t, repo.Create(context.Background(), memberPayment))

	payments, err := repo.ListForAccount(context.Background(), models.PaymentAccountTenant, tenant.ID, 0, 50)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, newer.ID, payments[0].ID)
	assert.Equal(t, older.ID, payments[1].ID)
}
