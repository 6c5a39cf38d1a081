package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/press-service/internal/config"
	"github.com/spec-kit/press-service/internal/domain"
)

func testHeuristic() *Heuristic {
	return NewHeuristic(config.AccessConfig{
		AdminUsernames:  []string{"root", "director"},
		WriterUsernames: []string{"desk"},
		OrgDomain:       "thepress.example",
	})
}

func TestDeriveRole(t *testing.T) {
	h := testHeuristic()

	tests := []struct {
		name  string
		email string
		want  domain.Role
	}{
		{name: "admin prefix", email: "root@gmail.com", want: domain.RoleAdmin},
		{name: "admin prefix with suffix", email: "director42@gmail.com", want: domain.RoleAdmin},
		{name: "writer prefix", email: "desk.news@gmail.com", want: domain.RoleWriter},
		{name: "org domain", email: "anyone@thepress.example", want: domain.RoleWriter},
		{name: "admin prefix wins over org domain", email: "root@thepress.example", want: domain.RoleAdmin},
		{name: "plain reader", email: "reader@gmail.com", want: domain.RoleAudience},
		{name: "case insensitive", email: "ROOT@GMAIL.COM", want: domain.RoleAdmin},
		{name: "surrounding whitespace", email: "  root@gmail.com  ", want: domain.RoleAdmin},
		{name: "subdomain is not org domain", email: "a@mail.thepress.example", want: domain.RoleAudience},
		{name: "empty email", email: "", want: domain.RoleAudience},
		{name: "no at sign", email: "not-an-email", want: domain.RoleAudience},
		{name: "missing local part", email: "@thepress.example", want: domain.RoleAudience},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.DeriveRole(tt.email))
		})
	}
}

func TestDeriveRoleIsPure(t *testing.T) {
	h := testHeuristic()
	// Same input always maps to the same role regardless of call order.
	for i := 0; i < 3; i++ {
		assert.Equal(t, domain.RoleAdmin, h.DeriveRole("root@gmail.com"))
		assert.Equal(t, domain.RoleAudience, h.DeriveRole("reader@gmail.com"))
	}
}

func TestDeriveRoleEmptyConfig(t *testing.T) {
	h := NewHeuristic(config.AccessConfig{})
	assert.Equal(t, domain.RoleAudience, h.DeriveRole("root@thepress.example"))
}
