package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUserFromNameDerivesRecord(t *testing.T) {
	user, err := NewUserFromName("Ada Lovelace", "mathematician")
	require.NoError(t, err)
	require.Equal(t, "ada.lovelace@reqres.in", user.Email)
	require.Equal(t, "Ada", user.FirstName)
	require.Equal(t, "Lovelace", user.LastName)
	require.Equal(t, "mathematician", user.Job)
	require.Zero(t, user.ID)
}

func TestNewUserFromNameSingleField(t *testing.T) {
	user, err := NewUserFromName("Cher", "singer")
	require.NoError(t, err)
	require.Equal(t, "cher@reqres.in", user.Email)
	require.Equal(t, "Cher", user.FirstName)
	require.Equal(t, "", user.LastName)
}

func TestNewUserFromNameCollapsesWhitespace(t *testing.T) {
	user, err := NewUserFromName("  Grace   Brewster Hopper ", "  rear admiral ")
	require.NoError(t, err)
	require.Equal(t, "grace.brewster.hopper@reqres.in", user.Email)
	require.Equal(t, "Grace", user.FirstName)
	require.Equal(t, "Brewster Hopper", user.LastName)
	require.Equal(t, "rear admiral", user.Job)
}

func TestNormalizeNameRejectsShortValues(t *testing.T) {
	for _, name := range []string{"", " ", "x", " x "} {
		_, err := NormalizeName(name)
		require.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestNormalizeJobRejectsShortValues(t *testing.T) {
	_, err := NormalizeJob(" q ")
	require.ErrorIs(t, err, ErrInvalidJob)

	job, err := NormalizeJob("qa")
	require.NoError(t, err)
	require.Equal(t, "qa", job)
}
