package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() *Contact {
	return &Contact{
		FirstName:   "Mia",
		LastName:    "Tanaka",
		Email:       "mia@example.com",
		DateOfBirth: time.Date(1990, 5, 12, 0, 0, 0, 0, time.Local),
	}
}

func TestContactValidateAcceptsPastBirthDate(t *testing.T) {
	require.NoError(t, validContact().Validate())
}

func TestContactBirthDateTodayRejected(t *testing.T) {
	c := validContact()
	c.DateOfBirth = time.Now()

	err := c.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestContactFullName(t *testing.T) {
	c := validContact()
	assert.Equal(t, "Mia Tanaka", c.FullName())

	c.FirstName = ""
	assert.Equal(t, "Tanaka", c.FullName())

	c.FirstName = "Mia"
	c.LastName = ""
	assert.Equal(t, "Mia", c.FullName())
}

func TestContactAge(t *testing.T) {
	c := validContact()
	c.DateOfBirth = time.Now().AddDate(-30, 0, 0)
	assert.Equal(t, 30, c.Age())

	// Birthday not reached yet this year
	c.DateOfBirth = time.Now().AddDate(-30, 0, 1)
	assert.Equal(t, 29, c.Age())
}
