package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangedesk/internal/domain/ticket"
	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
)

func dashboardTicket(t *testing.T, id uint, urgency vo.Urgency, status vo.TicketStatus, createdAt time.Time) *ticket.Ticket {
	t.Helper()

	requester := uint(2)
	tk, err := ticket.ReconstructTicket(
		id,
		fmt.Sprintf("Ticket %d", id),
		"dashboard fixture",
		"AST-001",
		vo.EnvironmentProduction,
		&requester,
		nil,
		urgency,
		status,
		nil,
		createdAt,
		createdAt,
	)
	require.NoError(t, err)
	return tk
}

func TestGetDashboardUseCase_Execute_CountsAddUp(t *testing.T) {
	now := time.Now()

	var tickets []*ticket.Ticket
	id := uint(1)
	add := func(n int, urgency vo.Urgency, status vo.TicketStatus) {
		for i := 0; i < n; i++ {
			tickets = append(tickets, dashboardTicket(t, id, urgency, status, now.Add(-time.Hour)))
			id++
		}
	}
	add(3, vo.UrgencyLow, vo.StatusOpen)
	add(2, vo.UrgencyMedium, vo.StatusInProgress)
	add(5, vo.UrgencyHigh, vo.StatusDone)

	mockRepo := &mockTicketRepository{
		ListAllVisibleFunc: func(ctx context.Context, identity user.Identity) ([]*ticket.Ticket, error) {
			return tickets, nil
		},
	}

	uc := NewGetDashboardUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetDashboardQuery{
		Identity: user.Identity{UserID: 1, IsStaff: true},
		Now:      now,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), result.Total)

	assert.Equal(t, int64(3), result.ByStatus["open"])
	assert.Equal(t, int64(2), result.ByStatus["in_progress"])
	assert.Equal(t, int64(5), result.ByStatus["done"])

	var statusSum, urgencySum int64
	for _, n := range result.ByStatus {
		statusSum += n
	}
	for _, n := range result.ByUrgency {
		urgencySum += n
	}
	assert.Equal(t, result.Total, statusSum)
	assert.Equal(t, result.Total, urgencySum)
}

func TestGetDashboardUseCase_Execute_ZeroCountsAreKeyed(t *testing.T) {
	now := time.Now()

	tickets := []*ticket.Ticket{
		dashboardTicket(t, 1, vo.UrgencyLow, vo.StatusOpen, now.Add(-time.Hour)),
	}

	mockRepo := &mockTicketRepository{
		ListAllVisibleFunc: func(ctx context.Context, identity user.Identity) ([]*ticket.Ticket, error) {
			return tickets, nil
		},
	}

	uc := NewGetDashboardUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetDashboardQuery{
		Identity: user.Identity{UserID: 1, IsStaff: true},
		Now:      now,
	})

	require.NoError(t, err)

	require.Len(t, result.ByStatus, len(vo.AllStatuses()))
	for _, status := range vo.AllStatuses() {
		_, ok := result.ByStatus[status.String()]
		assert.True(t, ok, "status %s missing from counts", status)
	}
	assert.Equal(t, int64(0), result.ByStatus["cancelled"])

	require.Len(t, result.ByUrgency, len(vo.AllUrgencies()))
	for _, urgency := range vo.AllUrgencies() {
		_, ok := result.ByUrgency[urgency.String()]
		assert.True(t, ok, "urgency %s missing from counts", urgency)
	}
	assert.Equal(t, int64(0), result.ByUrgency["critical"])
}

func TestGetDashboardUseCase_Execute_WindowEdgesAreInclusive(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tickets := []*ticket.Ticket{
		// Exactly seven days old: still inside the window.
		dashboardTicket(t, 1, vo.UrgencyLow, vo.StatusOpen, now.AddDate(0, 0, -7)),
		// A second older: only the 30 and 90 day windows catch it.
		dashboardTicket(t, 2, vo.UrgencyLow, vo.StatusOpen, now.AddDate(0, 0, -7).Add(-time.Second)),
		dashboardTicket(t, 3, vo.UrgencyLow, vo.StatusOpen, now.AddDate(0, 0, -45)),
		dashboardTicket(t, 4, vo.UrgencyLow, vo.StatusOpen, now.AddDate(0, 0, -100)),
	}

	mockRepo := &mockTicketRepository{
		ListAllVisibleFunc: func(ctx context.Context, identity user.Identity) ([]*ticket.Ticket, error) {
			return tickets, nil
		},
	}

	uc := NewGetDashboardUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetDashboardQuery{
		Identity: user.Identity{UserID: 1, IsStaff: true},
		Now:      now,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.CreatedLast7d)
	assert.Equal(t, int64(2), result.CreatedLast30d)
	assert.Equal(t, int64(3), result.CreatedLast90d)
}

func TestGetDashboardUseCase_Execute_TopCriticalOpen(t *testing.T) {
	now := time.Now()

	tickets := []*ticket.Ticket{
		// Severe urgency but terminal status: not critical-open.
		dashboardTicket(t, 1, vo.UrgencyCritical, vo.StatusDone, now.Add(-1*time.Hour)),
		// Actionable status but mild urgency: not critical-open.
		dashboardTicket(t, 2, vo.UrgencyLow, vo.StatusOpen, now.Add(-2*time.Hour)),
		dashboardTicket(t, 3, vo.UrgencyCritical, vo.StatusOpen, now.Add(-3*time.Hour)),
		dashboardTicket(t, 4, vo.UrgencyHigh, vo.StatusInProgress, now.Add(-30*time.Minute)),
		dashboardTicket(t, 5, vo.UrgencyCritical, vo.StatusAwaitingResponsible, now.Add(-10*time.Minute)),
	}

	mockRepo := &mockTicketRepository{
		ListAllVisibleFunc: func(ctx context.Context, identity user.Identity) ([]*ticket.Ticket, error) {
			return tickets, nil
		},
	}

	uc := NewGetDashboardUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetDashboardQuery{
		Identity: user.Identity{UserID: 1, IsStaff: true},
		Now:      now,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.CriticalOpen)

	require.Len(t, result.TopCriticalOpen, 3)
	assert.Equal(t, uint(5), result.TopCriticalOpen[0].ID)
	assert.Equal(t, uint(4), result.TopCriticalOpen[1].ID)
	assert.Equal(t, uint(3), result.TopCriticalOpen[2].ID)
}

func TestGetDashboardUseCase_Execute_CapsTopList(t *testing.T) {
	now := time.Now()

	var tickets []*ticket.Ticket
	for i := 1; i <= 15; i++ {
		tickets = append(tickets, dashboardTicket(t, uint(i), vo.UrgencyCritical, vo.StatusOpen, now.Add(-time.Duration(i)*time.Minute)))
	}

	mockRepo := &mockTicketRepository{
		ListAllVisibleFunc: func(ctx context.Context, identity user.Identity) ([]*ticket.Ticket, error) {
			return tickets, nil
		},
	}

	uc := NewGetDashboardUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetDashboardQuery{
		Identity: user.Identity{UserID: 1, IsStaff: true},
		Now:      now,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(15), result.CriticalOpen)
	require.Len(t, result.TopCriticalOpen, 10)
	// Newest first: ticket 1 was created most recently.
	assert.Equal(t, uint(1), result.TopCriticalOpen[0].ID)
	assert.Equal(t, uint(10), result.TopCriticalOpen[9].ID)
}
