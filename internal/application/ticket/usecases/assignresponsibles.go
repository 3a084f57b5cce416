package usecases

import (
	"context"
	"time"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type AssignResponsiblesCommand struct {
	TicketID uint
	Identity user.Identity
	UserIDs  []uint
}

type AssignResponsiblesResult struct {
	TicketID       uint
	ResponsibleIDs []uint
	Status         string
	UpdatedAt      time.Time
}

type AssignResponsiblesUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAssignResponsiblesUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignResponsiblesUseCase {
	return &AssignResponsiblesUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *AssignResponsiblesUseCase) Execute(ctx context.Context, cmd AssignResponsiblesCommand) (*AssignResponsiblesResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if !cmd.Identity.IsStaff {
		return nil, errors.NewForbiddenError("only staff can assign responsibles")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	for _, userID := range cmd.UserIDs {
		if _, err := uc.userRepo.FindByID(ctx, userID); err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("responsible user does not exist")
			}
			return nil, err
		}
	}

	if err := t.AssignResponsibles(cmd.UserIDs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to assign responsibles", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("responsibles assigned",
		"ticket_id", t.ID(),
		"responsible_count", len(t.ResponsibleIDs()))

	return &AssignResponsiblesResult{
		TicketID:       t.ID(),
		ResponsibleIDs: t.ResponsibleIDs(),
		Status:         t.Status().String(),
		UpdatedAt:      t.UpdatedAt(),
	}, nil
}
