package usecases

import (
	"context"
	"time"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type AddAttachmentCommand struct {
	TicketID     uint
	Identity     user.Identity
	Path         string
	OriginalName string
}

type AddAttachmentResult struct {
	AttachmentID uint
	Path         string
	UploadedAt   time.Time
}

type AddAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeViewedBy(cmd.Identity) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	attachment, err := ticket.NewAttachment(cmd.TicketID, cmd.Path, cmd.OriginalName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment added",
		"ticket_id", cmd.TicketID,
		"attachment_id", attachment.ID(),
		"original_name", cmd.OriginalName)

	return &AddAttachmentResult{
		AttachmentID: attachment.ID(),
		Path:         attachment.Path(),
		UploadedAt:   attachment.UploadedAt(),
	}, nil
}
