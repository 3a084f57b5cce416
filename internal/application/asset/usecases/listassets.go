package usecases

import (
	"context"

	"mangedesk/internal/application/asset/dto"
	"mangedesk/internal/domain/asset"
	vo "mangedesk/internal/domain/asset/valueobjects"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type ListAssetsQuery struct {
	Status      string
	Environment string
	Search      string
	Page        int
	PageSize    int
}

type ListAssetsResult struct {
	Items    []*dto.AssetDTO
	Total    int64
	Page     int
	PageSize int
}

type ListAssetsUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewListAssetsUseCase(
	assetRepo asset.Repository,
	logger logger.Interface,
) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error) {
	filter := asset.Filter{
		Environment: query.Environment,
		Search:      query.Search,
		Page:        query.Page,
		PageSize:    query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewAssetStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	assets, total, err := uc.assetRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, err
	}

	return &ListAssetsResult{
		Items:    dto.ToAssetDTOs(assets),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
