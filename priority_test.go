package pushover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    Priority
		wantErr bool
	}{
		"lowest by name":    {input: "lowest", want: PriorityLowest},
		"low by name":       {input: "low", want: PriorityLow},
		"normal by name":    {input: "normal", want: PriorityNormal},
		"high by name":      {input: "high", want: PriorityHigh},
		"emergency by name": {input: "emergency", want: PriorityEmergency},
		"lowest by number":  {input: "-2", want: PriorityLowest},
		"high by number":    {input: "1", want: PriorityHigh},
		"unknown name":      {input: "urgent", wantErr: true},
		"out of range":      {input: "3", wantErr: true},
		"empty string":      {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriority_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "lowest", PriorityLowest.String())
	assert.Equal(t, "emergency", PriorityEmergency.String())
	assert.Equal(t, "priority(7)", Priority(7).String())
}

func TestPriority_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, PriorityLowest.Valid())
	assert.True(t, PriorityEmergency.Valid())
	assert.False(t, Priority(-3).Valid())
	assert.False(t, Priority(3).Valid())
}
