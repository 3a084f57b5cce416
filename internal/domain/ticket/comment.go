package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Comment belongs to exactly one ticket and cascades with it. Append-only;
// the author reference is nulled if the account is deleted.
type Comment struct {
	id        uint
	ticketID  uint
	authorID  *uint
	text      string
	createdAt time.Time
}

func NewComment(ticketID uint, authorID *uint, text string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(strings.TrimSpace(text)) == 0 {
		return nil, fmt.Errorf("comment text is required")
	}

	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		text:      text,
		createdAt: time.Now(),
	}, nil
}

func ReconstructComment(id, ticketID uint, authorID *uint, text string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() *uint {
	return c.authorID
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
