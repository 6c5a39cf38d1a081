package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "press-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.False(t, cfg.Access.RevokeOnDelete)
	assert.Empty(t, cfg.Access.AdminUsernames)
}

func TestLoadAccessConfig(t *testing.T) {
	t.Setenv("ACCESS_ADMIN_USERNAMES", "root, director ,")
	t.Setenv("ACCESS_WRITER_USERNAMES", "desk")
	t.Setenv("ACCESS_ORG_DOMAIN", "thepress.example")
	t.Setenv("ACCESS_REVOKE_ON_DELETE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"root", "director"}, cfg.Access.AdminUsernames)
	assert.Equal(t, []string{"desk"}, cfg.Access.WriterUsernames)
	assert.Equal(t, "thepress.example", cfg.Access.OrgDomain)
	assert.True(t, cfg.Access.RevokeOnDelete)
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}
