package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCPURange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      []int
		wantError bool
		errorMsg  string
	}{
		{
			name:  "simple range",
			input: "0-3",
			want:  []int{0, 1, 2, 3},
		},
		{
			name:  "single cpu range",
			input: "2-2",
			want:  []int{2},
		},
		{
			name:  "offset range",
			input: "4-7",
			want:  []int{4, 5, 6, 7},
		},
		{
			name:      "missing dash",
			input:     "3",
			wantError: true,
			errorMsg:  "expected <start>-<end>",
		},
		{
			name:      "reversed bounds",
			input:     "3-0",
			wantError: true,
			errorMsg:  "start exceeds end",
		},
		{
			name:      "non-integer bounds",
			input:     "x-y",
			wantError: true,
			errorMsg:  "not an integer",
		},
		{
			name:      "non-integer end",
			input:     "0-y",
			wantError: true,
			errorMsg:  "not an integer",
		},
		{
			name:      "empty string",
			input:     "",
			wantError: true,
		},
		{
			name:      "negative start",
			input:     "-2-4",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCPURange(tt.input)
			if tt.wantError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCPUList(t *testing.T) {
	assert.Equal(t, "0,1,2,3", FormatCPUList([]int{0, 1, 2, 3}))
	assert.Equal(t, "5", FormatCPUList([]int{5}))
	assert.Equal(t, "", FormatCPUList(nil))
}
