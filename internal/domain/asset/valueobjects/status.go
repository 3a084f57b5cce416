package valueobjects

import "fmt"

type AssetStatus string

const (
	StatusActive           AssetStatus = "active"
	StatusInactive         AssetStatus = "inactive"
	StatusUnderMaintenance AssetStatus = "under_maintenance"
)

var validAssetStatuses = map[AssetStatus]bool{
	StatusActive:           true,
	StatusInactive:         true,
	StatusUnderMaintenance: true,
}

func (s AssetStatus) String() string {
	return string(s)
}

func (s AssetStatus) IsValid() bool {
	return validAssetStatuses[s]
}

func (s AssetStatus) IsActive() bool {
	return s == StatusActive
}

func (s AssetStatus) IsUnderMaintenance() bool {
	return s == StatusUnderMaintenance
}

func NewAssetStatus(s string) (AssetStatus, error) {
	as := AssetStatus(s)
	if !as.IsValid() {
		return "", fmt.Errorf("invalid asset status: %s", s)
	}
	return as, nil
}
