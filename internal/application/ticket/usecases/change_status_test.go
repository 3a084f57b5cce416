package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangedesk/internal/domain/ticket"
	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
)

func reconstructTestTicket(t *testing.T, id uint, requesterID uint, status vo.TicketStatus, responsibles []uint) *ticket.Ticket {
	t.Helper()

	requester := requesterID
	created := time.Now().Add(-time.Hour)

	tk, err := ticket.ReconstructTicket(
		id,
		"Broken conveyor",
		"The belt stops every few minutes",
		"AST-001",
		vo.EnvironmentProduction,
		&requester,
		responsibles,
		vo.UrgencyHigh,
		status,
		nil,
		created,
		created,
	)
	require.NoError(t, err)
	return tk
}

func TestChangeStatusUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name      string
		oldStatus vo.TicketStatus
		newStatus string
	}{
		{name: "open to in_progress", oldStatus: vo.StatusOpen, newStatus: "in_progress"},
		{name: "in_progress to done", oldStatus: vo.StatusInProgress, newStatus: "done"},
		{name: "done back to open", oldStatus: vo.StatusDone, newStatus: "open"},
		{name: "cancelled to completed", oldStatus: vo.StatusCancelled, newStatus: "completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := reconstructTestTicket(t, 1, 2, tt.oldStatus, nil)

			var updatedTicket *ticket.Ticket
			var appendedEntry *ticket.StatusHistoryEntry

			mockRepo := &mockTicketRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return existing, nil
				},
				UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					updatedTicket = tk
					return nil
				},
			}
			mockHistory := &mockHistoryRepository{
				AppendFunc: func(ctx context.Context, entry *ticket.StatusHistoryEntry) error {
					appendedEntry = entry
					return entry.SetID(77)
				},
			}

			uc := NewChangeStatusUseCase(mockRepo, mockHistory, &fakeTxRunner{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				Identity:  user.Identity{UserID: 2},
				NewStatus: tt.newStatus,
				Note:      "moved after triage",
			})

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.newStatus, result.Status)
			assert.Equal(t, uint(77), result.HistoryID)

			require.NotNil(t, updatedTicket)
			assert.Equal(t, tt.newStatus, updatedTicket.Status().String())

			require.NotNil(t, appendedEntry)
			assert.Equal(t, tt.newStatus, appendedEntry.Status().String())
			assert.Equal(t, "moved after triage", appendedEntry.Description())
			require.NotNil(t, appendedEntry.ActorID())
			assert.Equal(t, uint(2), *appendedEntry.ActorID())
		})
	}
}

func TestChangeStatusUseCase_Execute_ShortNote(t *testing.T) {
	existing := reconstructTestTicket(t, 1, 2, vo.StatusOpen, nil)

	updateCalled := false
	appendCalled := false

	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updateCalled = true
			return nil
		},
	}
	mockHistory := &mockHistoryRepository{
		AppendFunc: func(ctx context.Context, entry *ticket.StatusHistoryEntry) error {
			appendCalled = true
			return nil
		},
	}

	uc := NewChangeStatusUseCase(mockRepo, mockHistory, &fakeTxRunner{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		Identity:  user.Identity{UserID: 2},
		NewStatus: "done",
		Note:      "ok",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, updateCalled, "short note must reject before any write")
	assert.False(t, appendCalled)
	assert.Equal(t, vo.StatusOpen, existing.Status())
}

func TestChangeStatusUseCase_Execute_InvalidStatus(t *testing.T) {
	uc := NewChangeStatusUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, &fakeTxRunner{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		Identity:  user.Identity{UserID: 2},
		NewStatus: "paused",
		Note:      "not a real status",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestChangeStatusUseCase_Execute_Forbidden(t *testing.T) {
	existing := reconstructTestTicket(t, 1, 2, vo.StatusOpen, nil)

	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	uc := NewChangeStatusUseCase(mockRepo, &mockHistoryRepository{}, &fakeTxRunner{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		Identity:  user.Identity{UserID: 99},
		NewStatus: "done",
		Note:      "should not be allowed",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestChangeStatusUseCase_Execute_RollbackOnAppendFailure(t *testing.T) {
	existing := reconstructTestTicket(t, 1, 2, vo.StatusOpen, nil)

	rolledBack := false
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockHistory := &mockHistoryRepository{
		AppendFunc: func(ctx context.Context, entry *ticket.StatusHistoryEntry) error {
			return errors.NewInternalError("disk full")
		},
	}
	runner := &fakeTxRunner{
		RunFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			err := fn(ctx)
			if err != nil {
				rolledBack = true
			}
			return err
		},
	}

	uc := NewChangeStatusUseCase(mockRepo, mockHistory, runner, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		Identity:  user.Identity{UserID: 2},
		NewStatus: "done",
		Note:      "finishing the job",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, rolledBack, "transaction must report the failure so it rolls back")
}

func TestChangeStatusUseCase_Execute_WithPhotos(t *testing.T) {
	existing := reconstructTestTicket(t, 1, 2, vo.StatusOpen, nil)

	var appendedEntry *ticket.StatusHistoryEntry
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockHistory := &mockHistoryRepository{
		AppendFunc: func(ctx context.Context, entry *ticket.StatusHistoryEntry) error {
			appendedEntry = entry
			return nil
		},
	}

	uc := NewChangeStatusUseCase(mockRepo, mockHistory, &fakeTxRunner{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		Identity:  user.Identity{UserID: 2},
		NewStatus: "in_progress",
		Note:      "work started on site",
		Photos: []PhotoInput{
			{Path: "photos/2026/08/30/1.jpg", OriginalName: "before.jpg"},
			{Path: "photos/2026/08/30/2.jpg", OriginalName: "after.jpg"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, appendedEntry)
	assert.Len(t, appendedEntry.Photos(), 2)
}
