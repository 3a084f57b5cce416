package usecases

import (
	"context"
	"time"

	"mangedesk/internal/domain/asset"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type CreateAssetCommand struct {
	Identity     user.Identity
	Code         string
	Name         string
	Model        string
	Manufacturer string
	SerialNumber string
	Supplier     string
	Environment  string
}

type CreateAssetResult struct {
	AssetID   uint
	Code      string
	Status    string
	CreatedAt time.Time
}

type CreateAssetUseCase struct {
	assetRepo   asset.Repository
	historyRepo asset.HistoryRepository
	txManager   TransactionRunner
	logger      logger.Interface
}

func NewCreateAssetUseCase(
	assetRepo asset.Repository,
	historyRepo asset.HistoryRepository,
	txManager TransactionRunner,
	logger logger.Interface,
) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo:   assetRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (*CreateAssetResult, error) {
	if !cmd.Identity.IsStaff {
		return nil, errors.NewForbiddenError("only staff can register assets")
	}

	newAsset, err := asset.NewAsset(
		cmd.Code,
		cmd.Name,
		cmd.Model,
		cmd.Manufacturer,
		cmd.SerialNumber,
		cmd.Supplier,
		cmd.Environment,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	actorID := cmd.Identity.UserID

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assetRepo.Save(txCtx, newAsset); err != nil {
			return err
		}

		entry, err := asset.NewHistoryEntry(newAsset.ID(), "registered", "asset registered", &actorID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.historyRepo.Append(txCtx, entry)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to register asset", "code", cmd.Code, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("asset registered", "asset_id", newAsset.ID(), "code", newAsset.Code())

	return &CreateAssetResult{
		AssetID:   newAsset.ID(),
		Code:      newAsset.Code(),
		Status:    newAsset.Status().String(),
		CreatedAt: newAsset.CreatedAt(),
	}, nil
}
