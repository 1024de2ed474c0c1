package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeconds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.000", Seconds(0))
	assert.Equal(t, "2.000", Seconds(2))
	assert.Equal(t, "0.124", Seconds(0.1236))
}

func TestOptionalSeconds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Placeholder, OptionalSeconds(0))
	assert.Equal(t, "0.800", OptionalSeconds(0.8))
}

func TestPoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", Points(0))
	assert.Equal(t, "183", Points(183))
}

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{name: "micro", d: 250 * time.Microsecond, expected: "250µs"},
		{name: "milli", d: 42 * time.Millisecond, expected: "42ms"},
		{name: "seconds", d: 1500 * time.Millisecond, expected: "1.5s"},
		{name: "minutes", d: 90 * time.Second, expected: "1.5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Duration(tt.d))
		})
	}
}
