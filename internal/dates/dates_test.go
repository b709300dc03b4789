package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2026-03-14", "2026-03-14", true},
		{"2026-3-4", "2026-03-04", true},
		{"2026.3.4", "2026-03-04", true},
		{"2026/03/04", "2026-03-04", true},
		{"2026년 3월 14일", "2026-03-14", true},
		{"3-14", "2026-03-14", true},
		{"3/4", "2026-03-04", true},
		{"3월 14일", "2026-03-14", true},
		{"13-01", "", false}, // month out of range
		{"12-32", "", false}, // day out of range
		{"0-10", "", false},
		{"hello", "", false},
		{"", "", false},
		{"14", "", false}, // a lone number is not a date
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.in, 2026)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestNormalizeUsesDefaultYear(t *testing.T) {
	got, ok := Normalize("5월 5일", 2027)
	assert.True(t, ok)
	assert.Equal(t, "2027-05-05", got)
}
