package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"audience", "writer", "admin"} {
		role, err := ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, Role(valid), role)
		assert.True(t, role.Valid())
	}

	for _, invalid := range []string{"", "Admin", "superuser", "WRITER", "editor"} {
		_, err := ParseRole(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestParseApplicationStatus(t *testing.T) {
	for _, valid := range []string{"new", "reviewed", "shortlisted", "rejected"} {
		status, err := ParseApplicationStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, ApplicationStatus(valid), status)
	}

	_, err := ParseApplicationStatus("archived")
	assert.Error(t, err)
}
