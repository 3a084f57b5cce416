package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"mangedesk/internal/domain/asset"
	"mangedesk/internal/infrastructure/persistence/mappers"
	"mangedesk/internal/infrastructure/persistence/models"
	"mangedesk/internal/shared/db"
	"mangedesk/internal/shared/errors"
)

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(gdb *gorm.DB) *AssetRepository {
	return &AssetRepository{
		db:     gdb,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("asset code %s already exists", a.Code()))
		}
		return fmt.Errorf("failed to save asset: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AssetModel{}).
		Where("id = ?", model.ID).
		Select("name", "model", "manufacturer", "serial_number", "supplier",
			"environment", "status", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}

	return nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("asset %d not found", id))
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) FindByCode(ctx context.Context, code string) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("asset %s not found", code))
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssetModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Environment != "" {
		query = query.Where("environment = ?", filter.Environment)
	}
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where(
			"code LIKE ? OR name LIKE ? OR serial_number LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	query = query.Order("code ASC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.AssetModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		assets = append(assets, a)
	}

	return assets, total, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AssetModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("asset %d not found", id))
	}

	if err := tx.Where("asset_id = ?", id).Delete(&models.AssetHistoryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete asset history: %w", err)
	}

	return nil
}

type AssetHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetHistoryRepository(gdb *gorm.DB) *AssetHistoryRepository {
	return &AssetHistoryRepository{
		db:     gdb,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetHistoryRepository) Append(ctx context.Context, entry *asset.HistoryEntry) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.HistoryToModel(entry)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append asset movement: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *AssetHistoryRepository) ListByAsset(ctx context.Context, assetID uint) ([]*asset.HistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AssetHistoryModel
	if err := tx.Where("asset_id = ?", assetID).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list asset movements: %w", err)
	}

	entries := make([]*asset.HistoryEntry, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.HistoryToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
