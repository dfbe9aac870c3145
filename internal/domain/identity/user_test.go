package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active client", func(t *testing.T) {
		user, err := NewUser("Arber Hoxha", "arber@example.com", "hashed-password", RoleClient)
		require.NoError(t, err)

		assert.Equal(t, RoleClient, user.Role)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsAdmin())
		assert.Nil(t, user.LastLoginAt)
	})

	t.Run("normalizes email", func(t *testing.T) {
		user, err := NewUser("Arber", "  ARBER@Example.COM ", "hash", RoleClient)
		require.NoError(t, err)
		assert.Equal(t, "arber@example.com", user.Email)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("Arber", "not-an-email", "hash", RoleClient)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewUser("  ", "arber@example.com", "hash", RoleClient)
		assert.Error(t, err)
	})

	t.Run("rejects empty password hash", func(t *testing.T) {
		_, err := NewUser("Arber", "arber@example.com", "", RoleClient)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("Arber", "arber@example.com", "hash", Role("SUPERUSER"))
		assert.Error(t, err)
	})

	t.Run("admin role", func(t *testing.T) {
		user, err := NewUser("Admin", "admin@playbase.al", "hash", RoleAdmin)
		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})
}

func TestUserLifecycle(t *testing.T) {
	newUser := func(t *testing.T) *User {
		t.Helper()
		user, err := NewUser("Arber", "arber@example.com", "hash", RoleClient)
		require.NoError(t, err)
		return user
	}

	t.Run("record login", func(t *testing.T) {
		user := newUser(t)
		at := time.Now()
		user.RecordLogin(at)
		require.NotNil(t, user.LastLoginAt)
		assert.Equal(t, at, *user.LastLoginAt)
	})

	t.Run("change password", func(t *testing.T) {
		user := newUser(t)
		require.NoError(t, user.ChangePassword("new-hash"))
		assert.Equal(t, "new-hash", user.PasswordHash)
		assert.Error(t, user.ChangePassword(""))
	})

	t.Run("deactivate and reactivate", func(t *testing.T) {
		user := newUser(t)
		user.Deactivate()
		assert.False(t, user.IsActive)
		user.Activate()
		assert.True(t, user.IsActive)
	})
}
