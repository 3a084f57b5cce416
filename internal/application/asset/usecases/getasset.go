package usecases

import (
	"context"

	"mangedesk/internal/application/asset/dto"
	"mangedesk/internal/domain/asset"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type GetAssetQuery struct {
	AssetID uint
	Code    string
}

// GetAssetUseCase resolves an asset by id, or by code when id is zero. The
// code lookup serves QR tag scans.
type GetAssetUseCase struct {
	assetRepo   asset.Repository
	historyRepo asset.HistoryRepository
	logger      logger.Interface
}

func NewGetAssetUseCase(
	assetRepo asset.Repository,
	historyRepo asset.HistoryRepository,
	logger logger.Interface,
) *GetAssetUseCase {
	return &GetAssetUseCase{
		assetRepo:   assetRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, query GetAssetQuery) (*dto.AssetDTO, error) {
	var (
		a   *asset.Asset
		err error
	)

	switch {
	case query.AssetID != 0:
		a, err = uc.assetRepo.FindByID(ctx, query.AssetID)
	case query.Code != "":
		a, err = uc.assetRepo.FindByCode(ctx, query.Code)
	default:
		return nil, errors.NewValidationError("asset ID or code is required")
	}
	if err != nil {
		return nil, err
	}

	history, err := uc.historyRepo.ListByAsset(ctx, a.ID())
	if err != nil {
		return nil, err
	}

	result := dto.ToAssetDTO(a)
	result.History = dto.ToMovementDTOs(history)

	return result, nil
}
