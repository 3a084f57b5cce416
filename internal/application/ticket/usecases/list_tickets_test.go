package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangedesk/internal/domain/ticket"
	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
)

func TestListTicketsUseCase_Execute_PassesFilter(t *testing.T) {
	var gotFilter ticket.Filter
	var gotIdentity user.Identity

	tickets := []*ticket.Ticket{
		reconstructTestTicket(t, 1, 2, vo.StatusOpen, nil),
		reconstructTestTicket(t, 2, 2, vo.StatusInProgress, []uint{5}),
	}

	mockRepo := &mockTicketRepository{
		ListVisibleFunc: func(ctx context.Context, identity user.Identity, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			gotIdentity = identity
			gotFilter = filter
			return tickets, 2, nil
		},
	}

	uc := NewListTicketsUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		Identity:  user.Identity{UserID: 2},
		Status:    "open",
		Urgency:   "high",
		Search:    "conveyor",
		Page:      2,
		PageSize:  10,
		SortBy:    "created_at",
		SortOrder: "asc",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, 2, result.Page)

	assert.Equal(t, uint(2), gotIdentity.UserID)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, vo.StatusOpen, *gotFilter.Status)
	require.NotNil(t, gotFilter.Urgency)
	assert.Equal(t, vo.UrgencyHigh, *gotFilter.Urgency)
	assert.Nil(t, gotFilter.Environment)
	assert.Equal(t, "conveyor", gotFilter.Search)
}

func TestListTicketsUseCase_Execute_InvalidFilters(t *testing.T) {
	tests := []struct {
		name  string
		query ListTicketsQuery
	}{
		{name: "bad status", query: ListTicketsQuery{Status: "sleeping"}},
		{name: "bad urgency", query: ListTicketsQuery{Urgency: "mild"}},
		{name: "bad environment", query: ListTicketsQuery{Environment: "moon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mockRepo := &mockTicketRepository{
				ListVisibleFunc: func(ctx context.Context, identity user.Identity, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
					called = true
					return nil, 0, nil
				},
			}

			uc := NewListTicketsUseCase(mockRepo, &mockLogger{})

			_, err := uc.Execute(context.Background(), tt.query)

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.False(t, called)
		})
	}
}

func TestListTicketsUseCase_Execute_AnonymousGetsEmpty(t *testing.T) {
	mockRepo := &mockTicketRepository{
		ListVisibleFunc: func(ctx context.Context, identity user.Identity, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			if identity.IsAnonymous() {
				return []*ticket.Ticket{}, 0, nil
			}
			t.Fatal("expected anonymous identity")
			return nil, 0, nil
		},
	}

	uc := NewListTicketsUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListTicketsQuery{Identity: user.Anonymous()})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(0), result.Total)
}
