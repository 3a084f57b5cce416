package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "mangedesk/internal/domain/ticket/valueobjects"
)

// MinStatusNoteLength is the minimum length in runes of the descriptive
// note that must accompany every status change.
const MinStatusNoteLength = 5

// StatusHistoryEntry is the immutable audit record appended on every status
// change. Entries are owned by their ticket and cascade-deleted with it;
// they are never edited or reordered, and read newest-first.
type StatusHistoryEntry struct {
	id          uint
	ticketID    uint
	status      vo.TicketStatus
	description string
	actorID     *uint
	createdAt   time.Time
	photos      []*StatusPhoto
}

func NewStatusHistoryEntry(
	ticketID uint,
	status vo.TicketStatus,
	description string,
	actorID *uint,
) (*StatusHistoryEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if utf8.RuneCountInString(description) < MinStatusNoteLength {
		return nil, fmt.Errorf("status note must be at least %d characters", MinStatusNoteLength)
	}

	return &StatusHistoryEntry{
		ticketID:    ticketID,
		status:      status,
		description: description,
		actorID:     actorID,
		createdAt:   time.Now(),
		photos:      []*StatusPhoto{},
	}, nil
}

func ReconstructStatusHistoryEntry(
	id uint,
	ticketID uint,
	status vo.TicketStatus,
	description string,
	actorID *uint,
	createdAt time.Time,
	photos []*StatusPhoto,
) (*StatusHistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if photos == nil {
		photos = []*StatusPhoto{}
	}

	return &StatusHistoryEntry{
		id:          id,
		ticketID:    ticketID,
		status:      status,
		description: description,
		actorID:     actorID,
		createdAt:   createdAt,
		photos:      photos,
	}, nil
}

func (e *StatusHistoryEntry) ID() uint {
	return e.id
}

func (e *StatusHistoryEntry) TicketID() uint {
	return e.ticketID
}

func (e *StatusHistoryEntry) Status() vo.TicketStatus {
	return e.status
}

func (e *StatusHistoryEntry) Description() string {
	return e.description
}

func (e *StatusHistoryEntry) ActorID() *uint {
	return e.actorID
}

func (e *StatusHistoryEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *StatusHistoryEntry) Photos() []*StatusPhoto {
	photos := make([]*StatusPhoto, len(e.photos))
	copy(photos, e.photos)
	return photos
}

func (e *StatusHistoryEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	e.id = id
	return nil
}

// AttachPhoto links a photo to the entry before it is persisted.
func (e *StatusHistoryEntry) AttachPhoto(photo *StatusPhoto) error {
	if photo == nil {
		return fmt.Errorf("photo cannot be nil")
	}
	e.photos = append(e.photos, photo)
	return nil
}

// StatusPhoto is an image attached to a history entry, immutable once
// uploaded. The blob itself lives in the file store; only the generated
// path and the original filename are recorded here.
type StatusPhoto struct {
	id           uint
	historyID    uint
	path         string
	originalName string
	uploadedAt   time.Time
}

func NewStatusPhoto(path, originalName string) (*StatusPhoto, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("photo path is required")
	}
	if len(originalName) == 0 {
		return nil, fmt.Errorf("photo original name is required")
	}

	return &StatusPhoto{
		path:         path,
		originalName: originalName,
		uploadedAt:   time.Now(),
	}, nil
}

func ReconstructStatusPhoto(id, historyID uint, path, originalName string, uploadedAt time.Time) (*StatusPhoto, error) {
	if id == 0 {
		return nil, fmt.Errorf("photo ID cannot be zero")
	}
	if historyID == 0 {
		return nil, fmt.Errorf("history entry ID is required")
	}

	return &StatusPhoto{
		id:           id,
		historyID:    historyID,
		path:         path,
		originalName: originalName,
		uploadedAt:   uploadedAt,
	}, nil
}

func (p *StatusPhoto) ID() uint {
	return p.id
}

func (p *StatusPhoto) HistoryID() uint {
	return p.historyID
}

func (p *StatusPhoto) Path() string {
	return p.path
}

func (p *StatusPhoto) OriginalName() string {
	return p.originalName
}

func (p *StatusPhoto) UploadedAt() time.Time {
	return p.uploadedAt
}
