package dto

import (
	"time"

	"mangedesk/internal/domain/asset"
	"mangedesk/internal/shared/mapper"
)

type AssetDTO struct {
	ID           uint          `json:"id"`
	Code         string        `json:"code"`
	Name         string        `json:"name"`
	Model        string        `json:"model"`
	Manufacturer string        `json:"manufacturer"`
	SerialNumber string        `json:"serial_number"`
	Supplier     string        `json:"supplier"`
	Environment  string        `json:"environment"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	History      []MovementDTO `json:"history,omitempty"`
}

type MovementDTO struct {
	ID           uint      `json:"id"`
	MovementType string    `json:"movement_type"`
	Description  string    `json:"description"`
	ActorID      *uint     `json:"actor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToAssetDTO(a *asset.Asset) *AssetDTO {
	if a == nil {
		return nil
	}

	return &AssetDTO{
		ID:           a.ID(),
		Code:         a.Code(),
		Name:         a.Name(),
		Model:        a.Model(),
		Manufacturer: a.Manufacturer(),
		SerialNumber: a.SerialNumber(),
		Supplier:     a.Supplier(),
		Environment:  a.Environment(),
		Status:       a.Status().String(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func ToMovementDTO(e *asset.HistoryEntry) MovementDTO {
	return MovementDTO{
		ID:           e.ID(),
		MovementType: e.MovementType(),
		Description:  e.Description(),
		ActorID:      e.ActorID(),
		CreatedAt:    e.CreatedAt(),
	}
}

func ToAssetDTOs(assets []*asset.Asset) []*AssetDTO {
	return mapper.MapSlice(assets, ToAssetDTO)
}

func ToMovementDTOs(entries []*asset.HistoryEntry) []MovementDTO {
	return mapper.MapSlice(entries, ToMovementDTO)
}
