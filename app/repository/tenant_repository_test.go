package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
)

func TestCreateWithContactLinksPrimaryContact(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantAccountRepository(db)

	tenant := &models.TenantAccount{
		TenantName:       "Dragons Dojo",
		TenantSlug:       "dragons",
		SubscriptionType: models.SubscriptionBasic,
		AccountStatus:    models.AccountStatusActive,
		IsActive:         true,
	}
	contact := &models.Contact{
		FirstName:   "Mia",
		LastName:    "Tanaka",
		Email:       "mia@example.com",
		DateOfBirth: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}

	require.NoError(t, repo.CreateWithContact(tenant, contact))

	// Contact was created under the fresh tenant and linked back.
	require.NotNil(t, contact.TenantID)
	assert.Equal(t, tenant.ID, *contact.TenantID)
	require.NotNil(t, tenant.PrimaryContactID)
	assert.Equal(t, contact.ID, *tenant.PrimaryContactID)

	// Billing defaults fall back to the primary contact.
	require.NotNil(t, tenant.BillingContactID)
	assert.Equal(t, contact.ID, *tenant.BillingContactID)
	assert.Equal(t, "mia@example.com", tenant.BillingEmail)

	var link models.TenantAccountContact
	require.NoError(t, db.Where("account_id = ? AND contact_id = ?", tenant.ID, contact.ID).First(&link).Error)
	assert.Equal(t, models.TenantContactRolePrimary, link.Role)
	assert.True(t, link.IsActive)
}

func TestCreateWithContactRollsBackOnInvalidContact(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantAccountRepository(db)

	tenant := &models.TenantAccount{
		TenantName:       "Dragons Dojo",
		TenantSlug:       "dragons",
		SubscriptionType: models.SubscriptionBasic,
		AccountStatus:    models.AccountStatusActive,
		IsActive:         true,
	}
	contact := &models.Contact{
		FirstName:   "Mia",
		LastName:    "Tanaka",
		Email:       "not-an-email",
		DateOfBirth: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}

	require.Error(t, repo.CreateWithContact(tenant, contact))

	var count int64
	require.NoError(t, db.Model(&models.TenantAccount{}).Count(&count).Error)
	assert.Zero(t, count, "tenant insert must roll back with the failed contact")
}

func TestGetActiveBySlugExcludesInactiveTenants(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantAccountRepository(db)

	tenant := seedTenant(t, db, "dragons")

	got, err := repo.GetActiveBySlug("dragons")
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, got.ID)

	require.NoError(t, repo.Deactivate(tenant.ID))

	_, err = repo.GetActiveBySlug("dragons")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The row itself is still there for administrative access.
	_, err = repo.GetByID(tenant.ID)
	assert.NoError(t, err)
}

func TestTenantSlugIsUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantAccountRepository(db)

	seedTenant(t, db, "dragons")

	err := repo.Create(&models.TenantAccount{
		TenantName:       "Other Dragons",
		TenantSlug:       "dragons",
		SubscriptionType: models.SubscriptionBasic,
		AccountStatus:    models.AccountStatusActive,
	})
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestCanAddMember(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantAccountRepository(db)

	tenant := seedTenant(t, db, "dragons")
	require.NoError(t, db.Model(tenant).Update("max_member_accounts", 1).Error)
	tenant.MaxMemberAccounts = 1

	ok, err := repo.CanAddMember(tenant)
	require.NoError(t, err)
	assert.True(t, ok)

	seedMember(t, db, tenant)

	ok, err = repo.CanAddMember(tenant)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCountActiveMembersAndClubs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantAccountRepository(db)

	tenant := seedTenant(t, db, "dragons")
	other := seedTenant(t, db, "tigers")

	seedMember(t, db, tenant)
	inactive := seedMember(t, db, tenant)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)
	seedMember(t, db, other)

	seedClub(t, db, tenant, "north-dojo")
	seedClub(t, db, other, "south-dojo")

	members, err := repo.CountActiveMembers(tenant.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, members)

	clubs, err := repo.CountClubs(tenant.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, clubs)
}
