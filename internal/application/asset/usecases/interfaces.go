package usecases

import (
	"context"

	"mangedesk/internal/application/asset/dto"
)

// TransactionRunner is the slice of the transaction manager the use cases
// need. Satisfied by *db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateAssetExecutor interface {
	Execute(ctx context.Context, cmd CreateAssetCommand) (*CreateAssetResult, error)
}

type GetAssetExecutor interface {
	Execute(ctx context.Context, query GetAssetQuery) (*dto.AssetDTO, error)
}

type ListAssetsExecutor interface {
	Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error)
}

type UpdateAssetExecutor interface {
	Execute(ctx context.Context, cmd UpdateAssetCommand) (*UpdateAssetResult, error)
}

type DeleteAssetExecutor interface {
	Execute(ctx context.Context, cmd DeleteAssetCommand) error
}

type RecordMovementExecutor interface {
	Execute(ctx context.Context, cmd RecordMovementCommand) (*RecordMovementResult, error)
}
