package mappers

import (
	"fmt"

	"mangedesk/internal/domain/asset"
	vo "mangedesk/internal/domain/asset/valueobjects"
	"mangedesk/internal/infrastructure/persistence/models"
)

type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToDomain(model *models.AssetModel) (*asset.Asset, error)
	HistoryToModel(e *asset.HistoryEntry) *models.AssetHistoryModel
	HistoryToDomain(model *models.AssetHistoryModel) (*asset.HistoryEntry, error)
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:           a.ID(),
		Code:         a.Code(),
		Name:         a.Name(),
		Model:        a.Model(),
		Manufacturer: a.Manufacturer(),
		SerialNumber: a.SerialNumber(),
		Supplier:     a.Supplier(),
		Environment:  a.Environment(),
		Status:       a.Status().String(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
		UpdatedAt:    a.UpdatedAt().UnixMilli(),
	}
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	status, err := vo.NewAssetStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("asset %d: %w", model.ID, err)
	}

	return asset.ReconstructAsset(
		model.ID,
		model.Code,
		model.Name,
		model.Model,
		model.Manufacturer,
		model.SerialNumber,
		model.Supplier,
		model.Environment,
		status,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *AssetMapperImpl) HistoryToModel(e *asset.HistoryEntry) *models.AssetHistoryModel {
	return &models.AssetHistoryModel{
		ID:           e.ID(),
		AssetID:      e.AssetID(),
		MovementType: e.MovementType(),
		Description:  e.Description(),
		ActorID:      e.ActorID(),
		CreatedAt:    e.CreatedAt().UnixMilli(),
	}
}

func (m *AssetMapperImpl) HistoryToDomain(model *models.AssetHistoryModel) (*asset.HistoryEntry, error) {
	return asset.ReconstructHistoryEntry(
		model.ID,
		model.AssetID,
		model.MovementType,
		model.Description,
		model.ActorID,
		millisToTime(model.CreatedAt),
	)
}
