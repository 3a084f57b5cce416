package usecases

import (
	"context"
	"time"

	"mangedesk/internal/domain/ticket"
	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title         string
	Description   string
	AssetTag      string
	Environment   string
	Urgency       string
	RequesterID   uint
	SuggestedDate *time.Time
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "requester_id", cmd.RequesterID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	environment, _ := vo.NewEnvironment(cmd.Environment)
	urgency, _ := vo.NewUrgency(cmd.Urgency)

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		cmd.AssetTag,
		environment,
		urgency,
		cmd.RequesterID,
		cmd.SuggestedDate,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "urgency", newTicket.Urgency().String())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 255 {
		return errors.NewValidationError("title exceeds maximum length of 255 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.RequesterID == 0 {
		return errors.NewValidationError("requester ID is required")
	}

	if _, err := vo.NewEnvironment(cmd.Environment); err != nil {
		return errors.NewValidationError("invalid environment")
	}

	if _, err := vo.NewUrgency(cmd.Urgency); err != nil {
		return errors.NewValidationError("invalid urgency")
	}

	return nil
}
