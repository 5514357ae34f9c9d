package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClub() *Club {
	return &Club{TenantID: 1, Name: "Dragon Dojo", Slug: "dragon-dojo"}
}

func TestClubValidateAcceptsMinimalClub(t *testing.T) {
	require.NoError(t, validClub().Validate())
}

func TestClubSocialHandlesMustNotStartWithAt(t *testing.T) {
	c := validClub()
	c.InstagramHandle = "@dragondojo"
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	c = validClub()
	c.TwitterHandle = "@dragondojo"
	require.Error(t, c.Validate())

	c = validClub()
	c.InstagramHandle = "dragondojo"
	require.NoError(t, c.Validate())
}

func TestClubMaxMembersMustBePositive(t *testing.T) {
	c := validClub()
	zero := uint(0)
	c.MaxMembers = &zero

	err := c.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	one := uint(1)
	c.MaxMembers = &one
	require.NoError(t, c.Validate())
}
