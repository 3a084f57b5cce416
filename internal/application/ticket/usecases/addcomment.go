package usecases

import (
	"context"
	"time"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
	"mangedesk/internal/shared/services/markdown"
)

type AddCommentCommand struct {
	TicketID uint
	Identity user.Identity
	Text     string
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	markdownSvc markdown.Service
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
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

	// Comments are stored as authored but sanitized of raw HTML so later
	// rendering cannot replay script content.
	text := uc.markdownSvc.Sanitize(cmd.Text)

	comment, err := ticket.NewComment(cmd.TicketID, uc.authorID(cmd.Identity), text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", comment.ID())

	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}

func (uc *AddCommentUseCase) authorID(identity user.Identity) *uint {
	if identity.IsAnonymous() {
		return nil
	}
	id := identity.UserID
	return &id
}
