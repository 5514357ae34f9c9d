package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
)

func TestAffiliationCreateRequiresSameTenant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubAffiliationRepository(db)

	t1 := seedTenant(t, db, "dragons")
	t2 := seedTenant(t, db, "tigers")
	home := seedClub(t, db, t1, "north-dojo")
	foreign := seedClub(t, db, t2, "south-dojo")

	err := repo.Create(context.Background(), &models.ClubAffiliation{
		ClubPrimaryID:   home.ID,
		ClubSecondaryID: foreign.ID,
		AffiliationType: models.AffiliationPartner,
	})
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestAffiliationCreateRejectsReversePair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubAffiliationRepository(db)

	tenant := seedTenant(t, db, "dragons")
	a := seedClub(t, db, tenant, "north-dojo")
	b := seedClub(t, db, tenant, "south-dojo")

	require.NoError(t, repo.Create(context.Background(), &models.ClubAffiliation{
		ClubPrimaryID:   a.ID,
		ClubSecondaryID: b.ID,
		AffiliationType: models.AffiliationPartner,
	}))

	// The relationship is symmetric; the mirrored row is redundant.
	err := repo.Create(context.Background(), &models.ClubAffiliation{
		ClubPrimaryID:   b.ID,
		ClubSecondaryID: a.ID,
		AffiliationType: models.AffiliationPartner,
	})
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestAffiliationCreateRejectsSelfAffiliation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubAffiliationRepository(db)

	tenant := seedTenant(t, db, "dragons")
	club := seedClub(t, db, tenant, "north-dojo")

	err := repo.Create(context.Background(), &models.ClubAffiliation{
		ClubPrimaryID:   club.ID,
		ClubSecondaryID: club.ID,
		AffiliationType: models.AffiliationBranch,
	})
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestAffiliationListScopedThroughPrimaryClub(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubAffiliationRepository(db)

	t1 := seedTenant(t, db, "dragons")
	t2 := seedTenant(t, db, "tigers")
	mine := &models.ClubAffiliation{
		ClubPrimaryID:   seedClub(t, db, t1, "north-dojo").ID,
		ClubSecondaryID: seedClub(t, db, t1, "south-dojo").ID,
		AffiliationType: models.AffiliationBranch,
	}
	require.NoError(t, repo.Create(context.Background(), mine))
	foreign := &models.ClubAffiliation{
		ClubPrimaryID:   seedClub(t, db, t2, "east-dojo").ID,
		ClubSecondaryID: seedClub(t, db, t2, "west-dojo").ID,
		AffiliationType: models.AffiliationPartner,
	}
	require.NoError(t, repo.Create(context.Background(), foreign))

	affiliations, err := repo.List(ctxForTenant(t1), 0, 50)
	require.NoError(t, err)
	require.Len(t, affiliations, 1)
	assert.Equal(t, mine.ID, affiliations[0].ID)

	_, err = repo.GetByID(ctxForTenant(t1), foreign.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
