package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.TenantAccount{},
		&models.Contact{},
		&models.TenantAccountContact{},
		&models.UserProfile{},
		&models.MemberAccount{},
		&models.Club{},
		&models.ClubStaff{},
		&models.ClubMember{},
		&models.ClubAffiliation{},
		&models.PaymentHistory{},
	))
	return db
}

var seq int

func nextSeq() int {
	seq++
	return seq
}

func seedTenant(t *testing.T, db *gorm.DB, slug string) *models.TenantAccount {
	t.Helper()
	tenant := &models.TenantAccount{
		TenantName:        slug,
		TenantSlug:        slug,
		SubscriptionType:  models.SubscriptionBasic,
		AccountStatus:     models.AccountStatusActive,
		IsActive:          true,
		MaxMemberAccounts: 100,
		MaxClubs:          5,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func seedContact(t *testing.T, db *gorm.DB, tenant *models.TenantAccount) *models.Contact {
	t.Helper()
	n := nextSeq()
	contact := &models.Contact{
		FirstName:   "Test",
		LastName:    fmt.Sprintf("Person%d", n),
		Email:       fmt.Sprintf("person%d@example.com", n),
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
	if tenant != nil {
		contact.TenantID = &tenant.ID
	}
	require.NoError(t, db.Create(contact).Error)
	return contact
}

func seedMember(t *testing.T, db *gorm.DB, tenant *models.TenantAccount) *models.MemberAccount {
	t.Helper()
	contact := seedContact(t, db, tenant)
	member := &models.MemberAccount{
		TenantID:            tenant.ID,
		MemberContactID:     contact.ID,
		MembershipNumber:    fmt.Sprintf("M-%d", nextSeq()),
		MembershipType:      models.MembershipStudent,
		MembershipStartDate: time.Now().AddDate(-1, 0, 0),
		AccountStatus:       "active",
		IsActive:            true,
	}
	require.NoError(t, member.Validate())
	require.NoError(t, db.Create(member).Error)
	return member
}

func seedClub(t *testing.T, db *gorm.DB, tenant *models.TenantAccount, name string) *models.Club {
	t.Helper()
	club := &models.Club{TenantID: tenant.ID, Name: name, Slug: name}
	require.NoError(t, db.Create(club).Error)
	return club
}

// ctxForTenant builds a request context carrying only the tenant slot.
func ctxForTenant(tenant *models.TenantAccount) context.Context {
	return tenantctx.WithTenant(context.Background(), tenant)
}
