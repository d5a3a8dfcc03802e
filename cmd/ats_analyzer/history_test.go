package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCutoff(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{name: "date", value: "2025-01-15", want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "timestamp", value: "2025-02-01T08:30:00Z", want: time.Date(2025, 2, 1, 8, 30, 0, 0, time.UTC)},
		{name: "days", value: "30d", want: now.AddDate(0, 0, -30)},
		{name: "duration", value: "36h", want: now.Add(-36 * time.Hour)},
		{name: "whitespace", value: " 2d ", want: now.AddDate(0, 0, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCutoff(tt.value, now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseCutoff_Invalid(t *testing.T) {
	now := time.Now()
	for _, value := range []string{"", "yesterday", "-5d", "0d", "-1h", "2025-13-01"} {
		_, err := parseCutoff(value, now)
		assert.Error(t, err, value)
	}
}
