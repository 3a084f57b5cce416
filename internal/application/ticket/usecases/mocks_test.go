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

type mockHistoryRepository struct {
	AppendFunc       func(ctx context.Context, entry *ticket.StatusHistoryEntry) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.StatusHistoryEntry, error)
}

func (m *mockHistoryRepository) Append(ctx context.Context, entry *ticket.StatusHistoryEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.StatusHistoryEntry, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, comment *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc         func(ctx context.Context, attachment *ticket.Attachment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc           func(ctx context.Context, u *user.User) error
	UpdateFunc         func(ctx context.Context, u *user.User) error
	FindByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	ListFunc           func(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
	DeleteFunc         func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// fakeTxRunner executes the function directly; the real manager only adds a
// transaction to the context.
type fakeTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (f *fakeTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.RunFunc != nil {
		return f.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockMarkdownService struct {
	ToHTMLFunc          func(markdown string) (string, error)
	SanitizeFunc        func(htmlContent string) string
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	if m.ToHTMLFunc != nil {
		return m.ToHTMLFunc(markdown)
	}
	return markdown, nil
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(htmlContent)
	}
	return htmlContent
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return markdown, nil
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
