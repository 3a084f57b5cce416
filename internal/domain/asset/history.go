package asset

import (
	"fmt"
	"strings"
	"time"
)

// HistoryEntry records a movement or modification of an asset. Entries are
// append-only, owned by the asset and cascade-deleted with it, and read
// newest-first.
type HistoryEntry struct {
	id           uint
	assetID      uint
	movementType string
	description  string
	actorID      *uint
	createdAt    time.Time
}

func NewHistoryEntry(assetID uint, movementType, description string, actorID *uint) (*HistoryEntry, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if len(strings.TrimSpace(movementType)) == 0 {
		return nil, fmt.Errorf("movement type is required")
	}
	if len(strings.TrimSpace(description)) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	return &HistoryEntry{
		assetID:      assetID,
		movementType: movementType,
		description:  description,
		actorID:      actorID,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructHistoryEntry(
	id uint,
	assetID uint,
	movementType string,
	description string,
	actorID *uint,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}

	return &HistoryEntry{
		id:           id,
		assetID:      assetID,
		movementType: movementType,
		description:  description,
		actorID:      actorID,
		createdAt:    createdAt,
	}, nil
}

func (e *HistoryEntry) ID() uint {
	return e.id
}

func (e *HistoryEntry) AssetID() uint {
	return e.assetID
}

func (e *HistoryEntry) MovementType() string {
	return e.movementType
}

func (e *HistoryEntry) Description() string {
	return e.description
}

func (e *HistoryEntry) ActorID() *uint {
	return e.actorID
}

func (e *HistoryEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *HistoryEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	e.id = id
	return nil
}
