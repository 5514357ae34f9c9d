package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantValidateAllowsUnpersistedTenantWithoutPrimaryContact(t *testing.T) {
	tenant := &TenantAccount{
		TenantName:       "Kampfkunst Berlin",
		TenantSlug:       "kampfkunst-berlin",
		SubscriptionType: SubscriptionBasic,
		AccountStatus:    AccountStatusActive,
	}
	require.NoError(t, tenant.Validate())
}

func TestTenantValidateRequiresPrimaryContactOncePersisted(t *testing.T) {
	tenant := &TenantAccount{
		ID:               1,
		TenantName:       "Kampfkunst Berlin",
		TenantSlug:       "kampfkunst-berlin",
		SubscriptionType: SubscriptionBasic,
		AccountStatus:    AccountStatusActive,
	}

	err := tenant.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	contactID := uint(5)
	tenant.PrimaryContactID = &contactID
	require.NoError(t, tenant.Validate())
}

func TestTenantValidateRejectsInactivePrimaryContact(t *testing.T) {
	contactID := uint(5)
	tenant := &TenantAccount{
		ID:               1,
		TenantName:       "Kampfkunst Berlin",
		TenantSlug:       "kampfkunst-berlin",
		SubscriptionType: SubscriptionBasic,
		AccountStatus:    AccountStatusActive,
		PrimaryContactID: &contactID,
		PrimaryContact:   &Contact{IsActive: false},
	}

	err := tenant.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSubscriptionStatus(t *testing.T) {
	tenant := &TenantAccount{}
	assert.Equal(t, "active", tenant.SubscriptionStatus())

	future := time.Now().Add(24 * time.Hour)
	tenant.SubscriptionEndDate = &future
	assert.Equal(t, "active", tenant.SubscriptionStatus())

	past := time.Now().Add(-24 * time.Hour)
	tenant.SubscriptionEndDate = &past
	assert.Equal(t, "expired", tenant.SubscriptionStatus())
}
