package usecases

import (
	"context"
	"time"

	"mangedesk/internal/domain/ticket"
	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID      uint
	Identity      user.Identity
	Title         string
	Description   string
	AssetTag      string
	Environment   string
	Urgency       string
	SuggestedDate *time.Time
}

type UpdateTicketResult struct {
	TicketID  uint
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	environment, err := vo.NewEnvironment(cmd.Environment)
	if err != nil {
		return nil, errors.NewValidationError("invalid environment")
	}
	urgency, err := vo.NewUrgency(cmd.Urgency)
	if err != nil {
		return nil, errors.NewValidationError("invalid urgency")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeViewedBy(cmd.Identity) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	if err := t.UpdateDetails(
		cmd.Title,
		cmd.Description,
		cmd.AssetTag,
		environment,
		urgency,
		cmd.SuggestedDate,
	); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID())

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
