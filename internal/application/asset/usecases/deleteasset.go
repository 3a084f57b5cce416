package usecases

import (
	"context"

	"mangedesk/internal/domain/asset"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type DeleteAssetCommand struct {
	AssetID  uint
	Identity user.Identity
}

// DeleteAssetUseCase removes an asset and its movement history. Tickets
// referencing the asset by tag text are untouched.
type DeleteAssetUseCase struct {
	assetRepo asset.Repository
	txManager TransactionRunner
	logger    logger.Interface
}

func NewDeleteAssetUseCase(
	assetRepo asset.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		assetRepo: assetRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeleteAssetUseCase) Execute(ctx context.Context, cmd DeleteAssetCommand) error {
	if cmd.AssetID == 0 {
		return errors.NewValidationError("asset ID is required")
	}

	if !cmd.Identity.IsStaff {
		return errors.NewForbiddenError("only staff can delete assets")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.assetRepo.Delete(txCtx, cmd.AssetID)
	})
	if err != nil {
		uc.logger.Warnw("asset delete failed", "asset_id", cmd.AssetID, "error", err)
		return err
	}

	uc.logger.Infow("asset deleted", "asset_id", cmd.AssetID)
	return nil
}
