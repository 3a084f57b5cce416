package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUrgency(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Urgency
		wantErr bool
	}{
		{"critical", "critical", UrgencyCritical, false},
		{"high", "high", UrgencyHigh, false},
		{"medium", "medium", UrgencyMedium, false},
		{"low", "low", UrgencyLow, false},
		{"invalid value", "urgent", "", true},
		{"empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewUrgency(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUrgency_IsSevere(t *testing.T) {
	assert.True(t, UrgencyCritical.IsSevere())
	assert.True(t, UrgencyHigh.IsSevere())
	assert.False(t, UrgencyMedium.IsSevere())
	assert.False(t, UrgencyLow.IsSevere())
}
