package ticket

import (
	"fmt"
	"time"
)

// Attachment is a general file attached to a ticket, immutable once
// uploaded and cascade-deleted with the ticket. The blob is addressed by a
// generated path; only metadata is held here.
type Attachment struct {
	id           uint
	ticketID     uint
	path         string
	originalName string
	uploadedAt   time.Time
}

func NewAttachment(ticketID uint, path, originalName string) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("attachment path is required")
	}
	if len(originalName) == 0 {
		return nil, fmt.Errorf("attachment original name is required")
	}

	return &Attachment{
		ticketID:     ticketID,
		path:         path,
		originalName: originalName,
		uploadedAt:   time.Now(),
	}, nil
}

func ReconstructAttachment(id, ticketID uint, path, originalName string, uploadedAt time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		path:         path,
		originalName: originalName,
		uploadedAt:   uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) Path() string {
	return a.path
}

func (a *Attachment) OriginalName() string {
	return a.originalName
}

func (a *Attachment) UploadedAt() time.Time {
	return a.uploadedAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
