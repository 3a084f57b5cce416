package ticket

import (
	"context"

	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
)

type Filter struct {
	Status      *vo.TicketStatus
	Urgency     *vo.Urgency
	Environment *vo.Environment
	Search      string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)

	// ListVisible applies the ownership visibility rule in the query
	// itself: staff identities get everything, others only tickets they
	// requested or are responsible for, without duplicates.
	ListVisible(ctx context.Context, identity user.Identity, filter Filter) ([]*Ticket, int64, error)

	// ListAllVisible returns every visible ticket without pagination, for
	// dashboards and CSV export.
	ListAllVisible(ctx context.Context, identity user.Identity) ([]*Ticket, error)

	// DeleteGuarded removes the ticket and all owned history entries,
	// photos, comments, attachments and responsible links in one
	// transaction. The status guard and the delete are a single
	// conditional statement: if the ticket is in progress the call fails
	// with a conflict error and nothing is mutated.
	DeleteGuarded(ctx context.Context, id uint) error
}

type HistoryRepository interface {
	// Append persists the entry together with its photos. Callers wrap it
	// in a transaction with the status update so neither is visible
	// without the other.
	Append(ctx context.Context, entry *StatusHistoryEntry) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*StatusHistoryEntry, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
}
