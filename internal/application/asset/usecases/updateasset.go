package usecases

import (
	"context"
	"time"

	"mangedesk/internal/domain/asset"
	vo "mangedesk/internal/domain/asset/valueobjects"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type UpdateAssetCommand struct {
	AssetID      uint
	Identity     user.Identity
	Name         string
	Model        string
	Manufacturer string
	SerialNumber string
	Supplier     string
	Environment  string
	Status       string
}

type UpdateAssetResult struct {
	AssetID   uint
	Status    string
	UpdatedAt time.Time
}

// UpdateAssetUseCase edits asset details and records the modification in the
// movement history, atomically.
type UpdateAssetUseCase struct {
	assetRepo   asset.Repository
	historyRepo asset.HistoryRepository
	txManager   TransactionRunner
	logger      logger.Interface
}

func NewUpdateAssetUseCase(
	assetRepo asset.Repository,
	historyRepo asset.HistoryRepository,
	txManager TransactionRunner,
	logger logger.Interface,
) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo:   assetRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) (*UpdateAssetResult, error) {
	if cmd.AssetID == 0 {
		return nil, errors.NewValidationError("asset ID is required")
	}

	if !cmd.Identity.IsStaff {
		return nil, errors.NewForbiddenError("only staff can edit assets")
	}

	status, err := vo.NewAssetStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("invalid asset status")
	}

	var result *UpdateAssetResult
	actorID := cmd.Identity.UserID

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assetRepo.FindByID(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}

		if err := a.UpdateDetails(
			cmd.Name,
			cmd.Model,
			cmd.Manufacturer,
			cmd.SerialNumber,
			cmd.Supplier,
			cmd.Environment,
		); err != nil {
			return errors.NewValidationError(err.Error())
		}

		statusChanged := a.Status() != status
		if err := a.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.assetRepo.Update(txCtx, a); err != nil {
			return err
		}

		description := "asset details updated"
		if statusChanged {
			description = "asset updated, status set to " + status.String()
		}
		entry, err := asset.NewHistoryEntry(a.ID(), "modification", description, &actorID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.historyRepo.Append(txCtx, entry); err != nil {
			return err
		}

		result = &UpdateAssetResult{
			AssetID:   a.ID(),
			Status:    a.Status().String(),
			UpdatedAt: a.UpdatedAt(),
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to update asset", "asset_id", cmd.AssetID, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("asset updated", "asset_id", result.AssetID)

	return result, nil
}
