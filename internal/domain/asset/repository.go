package asset

import (
	"context"

	vo "mangedesk/internal/domain/asset/valueobjects"
)

type Filter struct {
	Status      *vo.AssetStatus
	Environment string
	Search      string
	Page        int
	PageSize    int
}

type Repository interface {
	Save(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	FindByID(ctx context.Context, id uint) (*Asset, error)
	FindByCode(ctx context.Context, code string) (*Asset, error)
	List(ctx context.Context, filter Filter) ([]*Asset, int64, error)

	// Delete removes the asset and its movement history in one
	// transaction. Tickets referencing the asset tag are untouched.
	Delete(ctx context.Context, id uint) error
}

type HistoryRepository interface {
	Append(ctx context.Context, entry *HistoryEntry) error
	ListByAsset(ctx context.Context, assetID uint) ([]*HistoryEntry, error)
}
