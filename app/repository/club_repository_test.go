package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
)

func TestClubCreateEnforcesQuota(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	tenant := seedTenant(t, db, "dragons")
	require.NoError(t, db.Model(tenant).Update("max_clubs", 2).Error)
	tenant.MaxClubs = 2

	require.NoError(t, repo.Create(context.Background(), &models.Club{TenantID: tenant.ID, Name: "North Dojo", Slug: "north-dojo"}))
	require.NoError(t, repo.Create(context.Background(), &models.Club{TenantID: tenant.ID, Name: "South Dojo", Slug: "south-dojo"}))

	err := repo.Create(context.Background(), &models.Club{TenantID: tenant.ID, Name: "East Dojo", Slug: "east-dojo"})
	assert.ErrorIs(t, err, models.ErrQuotaExceeded)
}

func TestClubQuotaZeroMeansUnlimited(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	tenant := seedTenant(t, db, "dragons")
	require.NoError(t, db.Model(tenant).Update("max_clubs", 0).Error)

	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		club := &models.Club{TenantID: tenant.ID, Name: name, Slug: name}
		require.NoError(t, repo.Create(context.Background(), club))
	}
}

func TestClubNameUniquePerTenant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	t1 := seedTenant(t, db, "dragons")
	t2 := seedTenant(t, db, "tigers")

	require.NoError(t, repo.Create(context.Background(), &models.Club{TenantID: t1.ID, Name: "North Dojo", Slug: "north-dojo"}))

	err := repo.Create(context.Background(), &models.Club{TenantID: t1.ID, Name: "North Dojo", Slug: "north-dojo-2"})
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))

	// The same name is fine under a different tenant.
	assert.NoError(t, repo.Create(context.Background(), &models.Club{TenantID: t2.ID, Name: "North Dojo", Slug: "north-dojo"}))
}

func TestClubUpdateNameCheckExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	tenant := seedTenant(t, db, "dragons")
	club := seedClub(t, db, tenant, "north-dojo")
	other := seedClub(t, db, tenant, "south-dojo")

	// Re-saving under its own name is not a collision.
	club.Description = "updated"
	require.NoError(t, repo.Update(context.Background(), club))

	// Renaming onto a sibling is.
	other.Name = "north-dojo"
	err := repo.Update(context.Background(), other)
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestClubListAndGetHonorTenantContext(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	t1 := seedTenant(t, db, "dragons")
	t2 := seedTenant(t, db, "tigers")
	mine := seedClub(t, db, t1, "north-dojo")
	seedClub(t, db, t2, "south-dojo")

	clubs, err := repo.List(ctxForTenant(t1), 0, 50)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, mine.ID, clubs[0].ID)

	_, err = repo.GetByID(ctxForTenant(t2), mine.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	all, err := repo.ListAll(0, 50)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
