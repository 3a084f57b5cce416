package asset

import (
	"fmt"
	"time"

	vo "mangedesk/internal/domain/asset/valueobjects"
)

// Asset is a tracked piece of equipment identified by a unique code (the
// printed QR tag). Its lifecycle is independent from tickets: tickets
// reference assets by tag text only, so deleting an asset never touches
// tickets.
type Asset struct {
	id           uint
	code         string
	name         string
	model        string
	manufacturer string
	serialNumber string
	supplier     string
	environment  string
	status       vo.AssetStatus
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAsset(
	code string,
	name string,
	model string,
	manufacturer string,
	serialNumber string,
	supplier string,
	environment string,
) (*Asset, error) {
	if len(code) == 0 {
		return nil, fmt.Errorf("asset code is required")
	}
	if len(code) > 50 {
		return nil, fmt.Errorf("asset code exceeds maximum length of 50 characters")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("asset name is required")
	}

	now := time.Now()
	return &Asset{
		code:         code,
		name:         name,
		model:        model,
		manufacturer: manufacturer,
		serialNumber: serialNumber,
		supplier:     supplier,
		environment:  environment,
		status:       vo.StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAsset(
	id uint,
	code string,
	name string,
	model string,
	manufacturer string,
	serialNumber string,
	supplier string,
	environment string,
	status vo.AssetStatus,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("asset code is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid asset status")
	}

	return &Asset{
		id:           id,
		code:         code,
		name:         name,
		model:        model,
		manufacturer: manufacturer,
		serialNumber: serialNumber,
		supplier:     supplier,
		environment:  environment,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Asset) ID() uint {
	return a.id
}

func (a *Asset) Code() string {
	return a.code
}

func (a *Asset) Name() string {
	return a.name
}

func (a *Asset) Model() string {
	return a.model
}

func (a *Asset) Manufacturer() string {
	return a.manufacturer
}

func (a *Asset) SerialNumber() string {
	return a.serialNumber
}

func (a *Asset) Supplier() string {
	return a.supplier
}

func (a *Asset) Environment() string {
	return a.environment
}

func (a *Asset) Status() vo.AssetStatus {
	return a.status
}

func (a *Asset) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Asset) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}

// UpdateDetails edits the descriptive fields. The code is immutable once
// printed on a physical tag.
func (a *Asset) UpdateDetails(name, model, manufacturer, serialNumber, supplier, environment string) error {
	if len(name) == 0 {
		return fmt.Errorf("asset name is required")
	}

	a.name = name
	a.model = model
	a.manufacturer = manufacturer
	a.serialNumber = serialNumber
	a.supplier = supplier
	a.environment = environment
	a.updatedAt = time.Now()

	return nil
}

func (a *Asset) ChangeStatus(newStatus vo.AssetStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid asset status: %s", newStatus)
	}

	a.status = newStatus
	a.updatedAt = time.Now()

	return nil
}
