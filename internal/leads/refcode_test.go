package leads

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReferenceCode(t *testing.T) {
	re := regexp.MustCompile(`^LINO-[A-Z0-9]{7}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := NewReferenceCode("LINO-")
		assert.Regexp(t, re, code)
		seen[code] = true
	}
	// Codes are random; 100 draws colliding would mean a broken generator.
	assert.Greater(t, len(seen), 90)
}

func TestMatchesFormat(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"own generator output", NewReferenceCode("LINO-"), true},
		{"six char suffix", "LINO-ABC123", true},
		{"eight char suffix", "LINO-ABCD1234", true},
		{"five char suffix too short", "LINO-ABC12", false},
		{"nine char suffix too long", "LINO-ABCD12345", false},
		{"lowercase rejected", "LINO-abc1234", false},
		{"wrong prefix", "ACME-ABC1234", false},
		{"missing prefix", "ABC1234", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesFormat("LINO-", tt.code))
		})
	}
}

func TestMatchesFormatQuotesPrefix(t *testing.T) {
	// A prefix containing regexp metacharacters must match literally.
	assert.True(t, MatchesFormat("A.B-", "A.B-ABC123"))
	assert.False(t, MatchesFormat("A.B-", "AXB-ABC123"))
}
