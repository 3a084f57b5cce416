package usecases

import (
	"context"

	"mangedesk/internal/application/ticket/dto"
	"mangedesk/internal/domain/ticket"
	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Identity    user.Identity
	Status      string
	Urgency     string
	Environment string
	Search      string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

type ListTicketsResult struct {
	Items    []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.ListVisible(ctx, query.Identity, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Items:    dto.ToTicketListItemDTOs(tickets),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	filter := ticket.Filter{
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if query.Urgency != "" {
		urgency, err := vo.NewUrgency(query.Urgency)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError("invalid urgency filter")
		}
		filter.Urgency = &urgency
	}

	if query.Environment != "" {
		environment, err := vo.NewEnvironment(query.Environment)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError("invalid environment filter")
		}
		filter.Environment = &environment
	}

	return filter, nil
}
