package usecases

import (
	"context"
	"time"

	"mangedesk/internal/domain/asset"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type RecordMovementCommand struct {
	AssetID      uint
	Identity     user.Identity
	MovementType string
	Description  string
}

type RecordMovementResult struct {
	EntryID   uint
	CreatedAt time.Time
}

type RecordMovementUseCase struct {
	assetRepo   asset.Repository
	historyRepo asset.HistoryRepository
	logger      logger.Interface
}

func NewRecordMovementUseCase(
	assetRepo asset.Repository,
	historyRepo asset.HistoryRepository,
	logger logger.Interface,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		assetRepo:   assetRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *RecordMovementUseCase) Execute(ctx context.Context, cmd RecordMovementCommand) (*RecordMovementResult, error) {
	if cmd.AssetID == 0 {
		return nil, errors.NewValidationError("asset ID is required")
	}

	if cmd.Identity.IsAnonymous() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	// Validation happens before any write; an invalid movement leaves the
	// history untouched.
	if _, err := uc.assetRepo.FindByID(ctx, cmd.AssetID); err != nil {
		return nil, err
	}

	actorID := cmd.Identity.UserID
	entry, err := asset.NewHistoryEntry(cmd.AssetID, cmd.MovementType, cmd.Description, &actorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.historyRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to record asset movement", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	uc.logger.Infow("asset movement recorded",
		"asset_id", cmd.AssetID,
		"movement_type", cmd.MovementType,
		"entry_id", entry.ID())

	return &RecordMovementResult{
		EntryID:   entry.ID(),
		CreatedAt: entry.CreatedAt(),
	}, nil
}
