package usecases

import (
	"context"

	"mangedesk/internal/application/ticket/dto"
)

// TransactionRunner is the slice of the transaction manager the use cases
// need. Satisfied by *db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatusNotifier delivers a notification to the requester after a status
// change commits. Satisfied by *email.SMTPEmailService.
type StatusNotifier interface {
	SendTicketStatusEmail(to string, ticketID uint, title, status, note string) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type BulkDeleteTicketsExecutor interface {
	Execute(ctx context.Context, cmd BulkDeleteTicketsCommand) (*BulkDeleteTicketsResult, error)
}

type AssignResponsiblesExecutor interface {
	Execute(ctx context.Context, cmd AssignResponsiblesCommand) (*AssignResponsiblesResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error)
}

type ExportTicketsExecutor interface {
	Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error)
}
