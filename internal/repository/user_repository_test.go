package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nghetinhport/tos-bigdata-api/internal/domain"
)

func TestStaticUserRepository(t *testing.T) {
	repo := NewStaticUserRepository([]domain.User{
		{Username: "abc", StoredCredential: "cred", FullName: "Admin User"},
	})

	user, err := repo.GetByUsername("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", user.Username)
	assert.Equal(t, "cred", user.StoredCredential)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByUsernameReturnsCopy(t *testing.T) {
	repo := NewStaticUserRepository([]domain.User{{Username: "abc"}})

	first, err := repo.GetByUsername("abc")
	require.NoError(t, err)
	first.Disabled = true

	second, err := repo.GetByUsername("abc")
	require.NoError(t, err)
	assert.False(t, second.Disabled)
}

func TestDefaultUsers(t *testing.T) {
	byName := map[string]domain.User{}
	for _, u := range DefaultUsers() {
		byName[u.Username] = u
	}

	require.Contains(t, byName, "abc")
	require.Contains(t, byName, "admin")
	assert.Equal(t, "6504E4EF9274BDE48162B6F2BE0FDF0", byName["abc"].StoredCredential)
	assert.False(t, byName["abc"].Disabled)
}
