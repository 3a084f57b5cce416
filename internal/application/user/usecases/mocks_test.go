package usecases

import (
	"context"

	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/logger"
)

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

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(hashedPassword, password string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return nil
}

type mockAccessTokenService struct {
	GenerateFunc func(userID uint, isStaff bool) (string, error)
}

func (m *mockAccessTokenService) Generate(userID uint, isStaff bool) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, isStaff)
	}
	return "token", nil
}

func (m *mockAccessTokenService) AccessExpMinutes() int {
	return 60
}

type mockResetTokenStore struct {
	IssueFunc   func(ctx context.Context, userID uint) (string, error)
	ConsumeFunc func(ctx context.Context, token string) (uint, error)
}

func (m *mockResetTokenStore) Issue(ctx context.Context, userID uint) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, userID)
	}
	return "reset-token", nil
}

func (m *mockResetTokenStore) Consume(ctx context.Context, token string) (uint, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, token)
	}
	return 0, nil
}

type mockPasswordResetMailer struct {
	SendFunc func(to, token string) error
}

func (m *mockPasswordResetMailer) SendPasswordResetEmail(to, token string) error {
	if m.SendFunc != nil {
		return m.SendFunc(to, token)
	}
	return nil
}

type fakeTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (f *fakeTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.RunFunc != nil {
		return f.RunFunc(ctx, fn)
	}
	return fn(ctx)
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
