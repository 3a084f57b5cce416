package models

type AssetModel struct {
	ID           uint   `gorm:"primaryKey"`
	Code         string `gorm:"uniqueIndex;size:50;not null"`
	Name         string `gorm:"size:200;not null;index"`
	Model        string `gorm:"size:200"`
	Manufacturer string `gorm:"size:200"`
	SerialNumber string `gorm:"size:200"`
	Supplier     string `gorm:"size:200"`
	Environment  string `gorm:"size:200"`
	Status       string `gorm:"size:20;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AssetModel) TableName() string {
	return "assets"
}

type AssetHistoryModel struct {
	ID           uint   `gorm:"primaryKey"`
	AssetID      uint   `gorm:"not null;index"`
	MovementType string `gorm:"size:100;not null"`
	Description  string `gorm:"type:text;not null"`
	ActorID      *uint  `gorm:"index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (AssetHistoryModel) TableName() string {
	return "asset_history"
}
