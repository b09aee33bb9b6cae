package newsapi

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLatestWithoutKeyReturnsFallback(t *testing.T) {
	for _, key := range []string{"", placeholderKey} {
		client := NewClient(key, 7, zerolog.Nop())

		headline := client.Latest("PLI Scheme")

		assert.Equal(t, Fallback(), headline)
		assert.Equal(t, "Apple iPhone becomes India's top export item in 2025 with USD 23 billion shipments", headline.Title)
		assert.Equal(t, "2026-02-23", headline.PublishedAt)
	}
}

func TestTruncateDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-02-23T10:15:00Z", "2026-02-23"},
		{"2026-02-23", "2026-02-23"},
		{"", "Unknown"},
		{"short", "short"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateDate(tt.in))
	}
}
