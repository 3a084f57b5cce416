package asset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "mangedesk/internal/domain/asset/valueobjects"
)

func TestNewAsset(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		assetName string
		wantErr   string
	}{
		{"valid asset", "AST-001", "laser printer", ""},
		{"missing code", "", "laser printer", "asset code is required"},
		{"missing name", "AST-001", "", "asset name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAsset(tt.code, tt.assetName, "LJ-4000", "HP", "SN123", "TechSupply", "3rd floor")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, vo.StatusActive, a.Status())
			assert.Equal(t, tt.code, a.Code())
		})
	}
}

func TestAsset_ChangeStatus(t *testing.T) {
	a, err := NewAsset("AST-001", "laser printer", "LJ-4000", "HP", "SN123", "TechSupply", "3rd floor")
	require.NoError(t, err)

	require.NoError(t, a.ChangeStatus(vo.StatusUnderMaintenance))
	assert.Equal(t, vo.StatusUnderMaintenance, a.Status())

	err = a.ChangeStatus(vo.AssetStatus("scrapped"))
	require.Error(t, err)
	assert.Equal(t, vo.StatusUnderMaintenance, a.Status())
}

func TestNewHistoryEntry(t *testing.T) {
	actor := uint(7)

	entry, err := NewHistoryEntry(1, "relocation", "moved from storage to 3rd floor", &actor)
	require.NoError(t, err)
	assert.Equal(t, "relocation", entry.MovementType())
	assert.False(t, entry.CreatedAt().IsZero())

	_, err = NewHistoryEntry(0, "relocation", "desc", &actor)
	assert.Error(t, err)

	_, err = NewHistoryEntry(1, "  ", "desc", &actor)
	assert.Error(t, err)

	_, err = NewHistoryEntry(1, "relocation", "", nil)
	assert.Error(t, err)
}

func TestReconstructAsset(t *testing.T) {
	now := time.Now()

	a, err := ReconstructAsset(3, "AST-003", "switch", "C2960", "Cisco", "SN9", "NetVendor", "server room", vo.StatusInactive, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(3), a.ID())
	assert.Equal(t, vo.StatusInactive, a.Status())

	_, err = ReconstructAsset(0, "AST-003", "switch", "", "", "", "", "", vo.StatusActive, now, now)
	assert.Error(t, err)

	_, err = ReconstructAsset(3, "AST-003", "switch", "", "", "", "", "", vo.AssetStatus("gone"), now, now)
	assert.Error(t, err)
}
