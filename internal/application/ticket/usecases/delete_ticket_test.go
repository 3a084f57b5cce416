package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangedesk/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute_Success(t *testing.T) {
	deletedID := uint(0)
	mockRepo := &mockTicketRepository{
		DeleteGuardedFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}

	uc := NewDeleteTicketUseCase(mockRepo, &fakeTxRunner{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 42})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, uint(42), deletedID)
}

func TestDeleteTicketUseCase_Execute_InProgressConflict(t *testing.T) {
	mockRepo := &mockTicketRepository{
		DeleteGuardedFunc: func(ctx context.Context, id uint) error {
			return errors.NewConflictError("cannot delete a ticket that is in progress")
		},
	}

	uc := NewDeleteTicketUseCase(mockRepo, &fakeTxRunner{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 42})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		DeleteGuardedFunc: func(ctx context.Context, id uint) error {
			return errors.NewNotFoundError("ticket 42 not found")
		},
	}

	uc := NewDeleteTicketUseCase(mockRepo, &fakeTxRunner{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 42})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteTicketUseCase_Execute_ZeroID(t *testing.T) {
	uc := NewDeleteTicketUseCase(&mockTicketRepository{}, &fakeTxRunner{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), DeleteTicketCommand{})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestBulkDeleteTicketsUseCase_Execute_MixedOutcome(t *testing.T) {
	mockRepo := &mockTicketRepository{
		DeleteGuardedFunc: func(ctx context.Context, id uint) error {
			switch id {
			case 2:
				return errors.NewConflictError("cannot delete a ticket that is in progress")
			case 4:
				return errors.NewNotFoundError("ticket 4 not found")
			default:
				return nil
			}
		},
	}

	uc := NewBulkDeleteTicketsUseCase(mockRepo, &fakeTxRunner{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), BulkDeleteTicketsCommand{
		TicketIDs: []uint{1, 2, 3, 4},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []uint{1, 3}, result.DeletedIDs)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, uint(2), result.Failed[0].TicketID)
	assert.Equal(t, uint(4), result.Failed[1].TicketID)
}

func TestBulkDeleteTicketsUseCase_Execute_EmptyList(t *testing.T) {
	uc := NewBulkDeleteTicketsUseCase(&mockTicketRepository{}, &fakeTxRunner{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), BulkDeleteTicketsCommand{})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
