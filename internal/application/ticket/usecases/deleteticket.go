package usecases

import (
	"context"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketResult struct {
	TicketID uint
}

// DeleteTicketUseCase removes a ticket and everything it owns. The guard
// against deleting an in-progress ticket lives in the repository as a
// conditional delete, so two racing requests cannot both pass a check and
// then delete.
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	txManager  TransactionRunner
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.DeleteGuarded(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Warnw("ticket delete rejected", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)

	return &DeleteTicketResult{TicketID: cmd.TicketID}, nil
}
