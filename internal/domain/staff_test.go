package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple name", in: "Shivendra Singh", want: "shivendra-singh"},
		{name: "punctuation collapses", in: "Jane O'Brien!!", want: "jane-o-brien"},
		{name: "already lowercase", in: "amira", want: "amira"},
		{name: "digits kept", in: "Agent 47", want: "agent-47"},
		{name: "leading and trailing junk", in: "  --Max Payne-- ", want: "max-payne"},
		{name: "consecutive separators", in: "a  b\t\tc", want: "a-b-c"},
		{name: "empty", in: "", want: ""},
		{name: "only punctuation", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSlug(tt.in))
		})
	}
}

func TestDeriveSlugDeterministic(t *testing.T) {
	first := DeriveSlug("Renata Flores Jr.")
	second := DeriveSlug("Renata Flores Jr.")
	assert.Equal(t, first, second)
}
