package usecases

import (
	"context"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc       func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc           func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListVisibleFunc    func(ctx context.Context, identity user.Identity, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListAllVisibleFunc func(ctx context.Context, identity user.Identity) ([]*ticket.Ticket, error)
	DeleteGuardedFunc  func(ctx context.Context, id uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListVisible(ctx context.Context, identity user.Identity, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListVisibleFunc != nil {
		return m.ListVisibleFunc(ctx, identity, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListAllVisible(ctx context.Context, identity user.Identity) ([]*ticket.Ticket, error) {
	if m.ListAllVisibleFunc != nil {
		return m.ListAllVisibleFunc(ctx, identity)
	}
	return nil, nil
}

func (m *mockTicketRepository) DeleteGuarded(ctx context.Context, id uint) error {
	if m.DeleteGuardedFunc != nil {
		return m.DeleteGuardedFunc(ctx, id)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
