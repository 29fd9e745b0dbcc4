package titleindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower-cases", "Annual Report", "annual report"},
		{"trims surrounding whitespace", "  Budget\t\n", "budget"},
		{"keeps inner whitespace", "Monthly  Report", "monthly  report"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
		{"non-ASCII letters lower-case", "ÉTÉ Notes", "été notes"},
		{"diacritics are kept", "Café", "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, s := range []string{" Annual Report ", "MONTHLY", "été", ""} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once))
	}
}
