package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{name: "zero", input: 0, expected: "0"},
		{name: "small number", input: 42, expected: "42"},
		{name: "hundreds", input: 999, expected: "999"},
		{name: "exactly 1000", input: 1000, expected: "1.0K"},
		{name: "thousands", input: 1500, expected: "1.5K"},
		{name: "hundreds of thousands", input: 999999, expected: "1000.0K"},
		{name: "exactly 1 million", input: 1000000, expected: "1.0M"},
		{name: "millions", input: 2500000, expected: "2.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.input))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{name: "zero", input: 0, expected: "0m"},
		{name: "under an hour", input: 45 * time.Minute, expected: "45m"},
		{name: "exactly one hour", input: time.Hour, expected: "1h 0m"},
		{name: "hours and minutes", input: 2*time.Hour + 30*time.Minute, expected: "2h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.input))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.0000", FormatCurrency(0))
	assert.Equal(t, "$0.0002", FormatCurrency(0.00015))
	assert.Equal(t, "$1.5000", FormatCurrency(1.5))
}

func TestFormatBurnRate(t *testing.T) {
	assert.Equal(t, "12.5 tokens/min", FormatBurnRate(12.5))
	assert.Equal(t, "1.5K tokens/min", FormatBurnRate(1500))
	assert.Equal(t, "2.0M tokens/min", FormatBurnRate(2000000))
}

func TestFormatCommaNumber(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCommaNumber(tt.input))
	}
}
