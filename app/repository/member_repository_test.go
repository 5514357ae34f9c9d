package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
)

func newMember(t *testing.T, db *gorm.DB, tenant *models.TenantAccount) *models.MemberAccount {
	t.Helper()
	contact := seedContact(t, db, tenant)
	return &models.MemberAccount{
		TenantID:            tenant.ID,
		MemberContactID:     contact.ID,
		MembershipNumber:    fmt.Sprintf("M-%d", nextSeq()),
		MembershipType:      models.MembershipStudent,
		MembershipStartDate: time.Now().AddDate(-1, 0, 0),
		AccountStatus:       "active",
		IsActive:            true,
	}
}

func TestMemberCreateEnforcesQuota(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberAccountRepository(db)

	tenant := seedTenant(t, db, "dragons")
	require.NoError(t, db.Model(tenant).Update("max_member_accounts", 1).Error)

	require.NoError(t, repo.Create(context.Background(), newMember(t, db, tenant)))

	err := repo.Create(context.Background(), newMember(t, db, tenant))
	require.ErrorIs(t, err, models.ErrQuotaExceeded)
	assert.Contains(t, err.Error(), "maximum 1 member accounts allowed")
}

func TestMemberQuotaIgnoresInactiveMembers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberAccountRepository(db)

	tenant := seedTenant(t, db, "dragons")
	require.NoError(t, db.Model(tenant).Update("max_member_accounts", 1).Error)

	first := newMember(t, db, tenant)
	require.NoError(t, repo.Create(context.Background(), first))
	require.NoError(t, db.Model(first).Update("is_active", false).Error)

	// The freed slot can be reused.
	assert.NoError(t, repo.Create(context.Background(), newMember(t, db, tenant)))
}

func TestMemberListByStatusBoundaryIsInclusive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberAccountRepository(db)
	tenant := seedTenant(t, db, "dragons")

	today := time.Now()
	endsToday := newMember(t, db, tenant)
	endsToday.MembershipEndDate = &today
	require.NoError(t, repo.Create(context.Background(), endsToday))

	yesterday := time.Now().AddDate(0, 0, -1)
	expired := newMember(t, db, tenant)
	expired.MembershipEndDate = &yesterday
	require.NoError(t, repo.Create(context.Background(), expired))

	open := newMember(t, db, tenant)
	require.NoError(t, repo.Create(context.Background(), open))

	inactive := newMember(t, db, tenant)
	inactive.IsActive = false
	require.NoError(t, repo.Create(context.Background(), inactive))

	active, err := repo.ListByStatus(ctxForTenant(tenant), models.MemberStatusActive)
	require.NoError(t, err)
	ids := memberIDs(active)
	// Ending today still counts as active.
	assert.Contains(t, ids, endsToday.ID)
	assert.Contains(t, ids, open.ID)
	assert.NotContains(t, ids, expired.ID)
	assert.NotContains(t, ids, inactive.ID)

	gone, err := repo.ListByStatus(ctxForTenant(tenant), models.MemberStatusExpired)
	require.NoError(t, err)
	require.Len(t, gone, 1)
	assert.Equal(t, expired.ID, gone[0].ID)

	off, err := repo.ListByStatus(ctxForTenant(tenant), models.MemberStatusInactive)
	require.NoError(t, err)
	require.Len(t, off, 1)
	assert.Equal(t, inactive.ID, off[0].ID)

	none, err := repo.ListByStatus(ctxForTenant(tenant), "bogus")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemberListExpiringSoon(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberAccountRepository(db)
	tenant := seedTenant(t, db, "dragons")

	in10 := time.Now().AddDate(0, 0, 10)
	soon := newMember(t, db, tenant)
	soon.MembershipEndDate = &in10
	require.NoError(t, repo.Create(context.Background(), soon))

	in60 := time.Now().AddDate(0, 0, 60)
	later := newMember(t, db, tenant)
	later.MembershipEndDate = &in60
	require.NoError(t, repo.Create(context.Background(), later))

	// No end date never expires.
	require.NoError(t, repo.Create(context.Background(), newMember(t, db, tenant)))

	expiring, err := repo.ListExpiringSoon(ctxForTenant(tenant), 30)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, soon.ID, expiring[0].ID)
}

func TestMemberScopingIsolatesTenants(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberAccountRepository(db)

	t1 := seedTenant(t, db, "dragons")
	t2 := seedTenant(t, db, "tigers")
	mine := seedMember(t, db, t1)
	seedMember(t, db, t2)

	members, err := repo.List(ctxForTenant(t1), 0, 50)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, mine.ID, members[0].ID)

	_, err = repo.GetByID(ctxForTenant(t2), mine.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := repo.CountAll()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestMemberGetByMembershipNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberAccountRepository(db)
	tenant := seedTenant(t, db, "dragons")
	member := seedMember(t, db, tenant)

	got, err := repo.GetByMembershipNumber(ctxForTenant(tenant), member.MembershipNumber)
	require.NoError(t, err)
	assert.Equal(t, member.ID, got.ID)
}

func memberIDs(members []models.MemberAccount) []uint {
	ids := make([]uint, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids
}
