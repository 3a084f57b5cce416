package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/shared/errors"
)

func validCreateCommand() CreateTicketCommand {
	return CreateTicketCommand{
		Title:       "Printer offline",
		Description: "The label printer on line 3 does not respond",
		AssetTag:    "PRT-003",
		Environment: "production",
		Urgency:     "medium",
		RequesterID: 7,
	}
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var saved *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(10)
		},
	}

	uc := NewCreateTicketUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), validCreateCommand())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.TicketID)
	assert.Equal(t, "open", result.Status)

	require.NotNil(t, saved)
	require.NotNil(t, saved.RequesterID())
	assert.Equal(t, uint(7), *saved.RequesterID())
	assert.Empty(t, saved.ResponsibleIDs())
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *CreateTicketCommand)
	}{
		{name: "empty title", mutate: func(cmd *CreateTicketCommand) { cmd.Title = "" }},
		{name: "empty description", mutate: func(cmd *CreateTicketCommand) { cmd.Description = "" }},
		{name: "zero requester", mutate: func(cmd *CreateTicketCommand) { cmd.RequesterID = 0 }},
		{name: "unknown environment", mutate: func(cmd *CreateTicketCommand) { cmd.Environment = "lab" }},
		{name: "unknown urgency", mutate: func(cmd *CreateTicketCommand) { cmd.Urgency = "whenever" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveCalled := false
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					saveCalled = true
					return nil
				},
			}

			uc := NewCreateTicketUseCase(mockRepo, &mockLogger{})

			cmd := validCreateCommand()
			tt.mutate(&cmd)

			result, err := uc.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.False(t, saveCalled)
		})
	}
}

func TestCreateTicketUseCase_Execute_RepositoryFailure(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.NewInternalError("connection lost")
		},
	}

	uc := NewCreateTicketUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), validCreateCommand())

	require.Error(t, err)
	assert.Nil(t, result)
}
