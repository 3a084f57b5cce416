package usecases

import (
	"context"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type BulkDeleteTicketsCommand struct {
	TicketIDs []uint
}

type BulkDeleteFailure struct {
	TicketID uint   `json:"ticket_id"`
	Reason   string `json:"reason"`
}

type BulkDeleteTicketsResult struct {
	DeletedIDs []uint              `json:"deleted_ids"`
	Failed     []BulkDeleteFailure `json:"failed"`
}

// BulkDeleteTicketsUseCase deletes each ticket independently: an in-progress
// ticket in the middle of the list is reported and skipped, the rest are
// still removed.
type BulkDeleteTicketsUseCase struct {
	ticketRepo ticket.Repository
	txManager  TransactionRunner
	logger     logger.Interface
}

func NewBulkDeleteTicketsUseCase(
	ticketRepo ticket.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *BulkDeleteTicketsUseCase {
	return &BulkDeleteTicketsUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *BulkDeleteTicketsUseCase) Execute(ctx context.Context, cmd BulkDeleteTicketsCommand) (*BulkDeleteTicketsResult, error) {
	if len(cmd.TicketIDs) == 0 {
		return nil, errors.NewValidationError("at least one ticket ID is required")
	}

	result := &BulkDeleteTicketsResult{
		DeletedIDs: []uint{},
		Failed:     []BulkDeleteFailure{},
	}

	for _, id := range cmd.TicketIDs {
		ticketID := id
		err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			return uc.ticketRepo.DeleteGuarded(txCtx, ticketID)
		})
		if err != nil {
			result.Failed = append(result.Failed, BulkDeleteFailure{
				TicketID: ticketID,
				Reason:   err.Error(),
			})
			continue
		}
		result.DeletedIDs = append(result.DeletedIDs, ticketID)
	}

	uc.logger.Infow("bulk delete finished",
		"requested", len(cmd.TicketIDs),
		"deleted", len(result.DeletedIDs),
		"failed", len(result.Failed))

	return result, nil
}
