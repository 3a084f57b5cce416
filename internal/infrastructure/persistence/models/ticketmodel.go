package models

type TicketModel struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:255;not null"`
	Description   string `gorm:"type:text;not null"`
	AssetTag      string `gorm:"size:200;index"`
	Environment   string `gorm:"size:20;not null;index"`
	RequesterID   *uint  `gorm:"index"`
	Urgency       string `gorm:"size:20;not null;index"`
	Status        string `gorm:"size:30;not null;index"`
	SuggestedDate *int64
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketResponsibleModel is the join table for the responsible-party set.
type TicketResponsibleModel struct {
	ID       uint `gorm:"primaryKey"`
	TicketID uint `gorm:"not null;index:idx_ticket_responsible,unique"`
	UserID   uint `gorm:"not null;index:idx_ticket_responsible,unique"`
}

func (TicketResponsibleModel) TableName() string {
	return "ticket_responsibles"
}

type StatusHistoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	Status      string `gorm:"size:30;not null"`
	Description string `gorm:"type:text;not null"`
	ActorID     *uint  `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (StatusHistoryModel) TableName() string {
	return "ticket_status_history"
}

type StatusPhotoModel struct {
	ID           uint   `gorm:"primaryKey"`
	HistoryID    uint   `gorm:"not null;index"`
	Path         string `gorm:"size:500;not null"`
	OriginalName string `gorm:"size:255;not null"`
	UploadedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (StatusPhotoModel) TableName() string {
	return "ticket_status_photos"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  *uint  `gorm:"index"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	Path         string `gorm:"size:500;not null"`
	OriginalName string `gorm:"size:255;not null"`
	UploadedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "ticket_attachments"
}
