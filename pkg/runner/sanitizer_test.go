package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeEquation_SizeLimit(t *testing.T) {
	limit := 4096

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Repeat("1", tt.inputSize)
			_, err := SanitizeEquation(input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeEquation_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "X^2 = 4", "X^2 = 4"},
		{"Newlines And Tabs", "X^2\n=\t4\r\n", "X^2 = 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeEquation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeEquation_RejectsControlChars(t *testing.T) {
	for name, input := range map[string]string{
		"Null Between Digits": "1\x002*X=0",
		"ANSI Code":           "\x1b[31mX\x1b[0m = 1",
		"Bell":                "X = 1\x07",
		"Delete":              "X = 1\x7f",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := SanitizeEquation(input)
			assert.ErrorIs(t, err, ErrControlChar)
		})
	}
}

func TestSanitizeEquation_Rejects(t *testing.T) {
	_, err := SanitizeEquation("  \n\t ")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = SanitizeEquation("X = \xff")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestSanitizeEquation_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")

	_, err := SanitizeEquation("X^2 = 1234567")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	_, err = SanitizeEquation("X = 5")
	assert.NoError(t, err)
}
