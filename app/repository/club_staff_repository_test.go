package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
)

func seedStaff(t *testing.T, db *gorm.DB, tenant *models.TenantAccount, club *models.Club, role string) *models.ClubStaff {
	t.Helper()
	contact := seedContact(t, db, tenant)
	staff := &models.ClubStaff{
		ClubID:    club.ID,
		ContactID: contact.ID,
		Role:      role,
		IsActive:  true,
	}
	require.NoError(t, staff.Validate())
	require.NoError(t, db.Create(staff).Error)
	return staff
}

func actorCtx(tenant *models.TenantAccount, profile *models.UserProfile) context.Context {
	return tenantctx.WithActor(ctxForTenant(tenant), profile)
}

func TestStaffVisibilityLimitsRegularUsersToTheirClubs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubStaffRepository(db)

	tenant := seedTenant(t, db, "dragons")
	clubA := seedClub(t, db, tenant, "north-dojo")
	clubB := seedClub(t, db, tenant, "south-dojo")

	mine := seedStaff(t, db, tenant, clubA, models.StaffRoleInstructor)
	seedStaff(t, db, tenant, clubB, models.StaffRoleInstructor)

	actor := &models.UserProfile{
		ID:               1,
		ContactID:        mine.ContactID,
		PermissionsLevel: models.PermissionStaff,
	}

	staff, err := repo.List(actorCtx(tenant, actor), 0, 50)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, mine.ID, staff[0].ID)
}

func TestStaffVisibilityHidesEverythingFromNonStaff(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubStaffRepository(db)

	tenant := seedTenant(t, db, "dragons")
	club := seedClub(t, db, tenant, "north-dojo")
	seedStaff(t, db, tenant, club, models.StaffRoleInstructor)

	outsider := seedContact(t, db, tenant)
	actor := &models.UserProfile{
		ID:               1,
		ContactID:        outsider.ID,
		PermissionsLevel: models.PermissionMember,
	}

	staff, err := repo.List(actorCtx(tenant, actor), 0, 50)
	require.NoError(t, err)
	assert.Empty(t, staff)
}

func TestStaffVisibilityExemptsSystemAdmins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubStaffRepository(db)

	tenant := seedTenant(t, db, "dragons")
	other := seedTenant(t, db, "tigers")
	seedStaff(t, db, tenant, seedClub(t, db, tenant, "north-dojo"), models.StaffRoleInstructor)
	seedStaff(t, db, tenant, seedClub(t, db, tenant, "south-dojo"), models.StaffRoleInstructor)
	seedStaff(t, db, other, seedClub(t, db, other, "east-dojo"), models.StaffRoleInstructor)

	admin := &models.UserProfile{ID: 1, ContactID: 999, IsSuperuser: true}

	// The admin sees every club of the context tenant, but tenant
	// narrowing still applies.
	staff, err := repo.List(actorCtx(tenant, admin), 0, 50)
	require.NoError(t, err)
	assert.Len(t, staff, 2)
}

func TestStaffVisibilityRequiresTenantContext(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubStaffRepository(db)

	tenant := seedTenant(t, db, "dragons")
	club := seedClub(t, db, tenant, "north-dojo")
	seedStaff(t, db, tenant, club, models.StaffRoleInstructor)

	outsider := seedContact(t, db, tenant)
	actor := &models.UserProfile{ID: 1, ContactID: outsider.ID, PermissionsLevel: models.PermissionMember}

	// Without a tenant slot the user filter stays disengaged.
	ctx := tenantctx.WithActor(context.Background(), actor)
	staff, err := repo.List(ctx, 0, 50)
	require.NoError(t, err)
	assert.Len(t, staff, 1)
}

func TestStaffInactiveAssignmentsDoNotGrantVisibility(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubStaffRepository(db)

	tenant := seedTenant(t, db, "dragons")
	club := seedClub(t, db, tenant, "north-dojo")
	former := seedStaff(t, db, tenant, club, models.StaffRoleInstructor)
	require.NoError(t, db.Model(former).Update("is_active", false).Error)
	seedStaff(t, db, tenant, club, models.StaffRoleAdmin)

	actor := &models.UserProfile{ID: 1, ContactID: former.ContactID, PermissionsLevel: models.PermissionStaff}

	staff, err := repo.List(actorCtx(tenant, actor), 0, 50)
	require.NoError(t, err)
	assert.Empty(t, staff)
}

func TestStaffClubContactPairIsUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubStaffRepository(db)

	tenant := seedTenant(t, db, "dragons")
	club := seedClub(t, db, tenant, "north-dojo")
	existing := seedStaff(t, db, tenant, club, models.StaffRoleInstructor)

	err := repo.Create(context.Background(), &models.ClubStaff{
		ClubID:    club.ID,
		ContactID: existing.ContactID,
		Role:      models.StaffRoleAssistant,
		IsActive:  true,
	})
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestListActiveByContactIgnoresContext(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubStaffRepository(db)

	tenant := seedTenant(t, db, "dragons")
	club := seedClub(t, db, tenant, "north-dojo")
	staff := seedStaff(t, db, tenant, club, models.StaffRoleOwner)

	assignments, err := repo.ListActiveByContact(staff.ContactID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, staff.ID, assignments[0].ID)
}
