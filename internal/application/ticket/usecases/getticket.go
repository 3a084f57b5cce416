package usecases

import (
	"context"

	"mangedesk/internal/application/ticket/dto"
	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
	"mangedesk/internal/shared/mapper"
	"mangedesk/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
	Identity user.Identity
}

type GetTicketUseCase struct {
	ticketRepo     ticket.Repository
	historyRepo    ticket.HistoryRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	markdownSvc    markdown.Service
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		historyRepo:    historyRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		markdownSvc:    markdownSvc,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeViewedBy(query.Identity) {
		uc.logger.Warnw("ticket access denied",
			"ticket_id", query.TicketID,
			"user_id", query.Identity.UserID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	history, err := uc.historyRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	result := dto.ToTicketDTO(t)
	result.History = mapper.MapSlice(history, dto.ToHistoryDTO)
	result.Comments = uc.renderComments(comments)
	result.Attachments = mapper.MapSlice(attachments, dto.ToAttachmentDTO)

	if html, err := uc.markdownSvc.ToHTMLSanitized(t.Description()); err == nil {
		result.DescriptionHTML = html
	}

	return result, nil
}

func (uc *GetTicketUseCase) renderComments(comments []*ticket.Comment) []dto.CommentDTO {
	rendered := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		item := dto.ToCommentDTO(c)
		if html, err := uc.markdownSvc.ToHTMLSanitized(c.Text()); err == nil {
			item.TextHTML = html
		}
		rendered = append(rendered, item)
	}
	return rendered
}
