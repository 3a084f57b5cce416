package usecases

import (
	"context"

	"mangedesk/internal/application/user/dto"
)

// TransactionRunner executes a function inside a database transaction
// carried on the context.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

// AccessTokenService issues signed access tokens for authenticated users.
type AccessTokenService interface {
	Generate(userID uint, isStaff bool) (string, error)
	AccessExpMinutes() int
}

// ResetTokenStore issues and consumes single-use password reset tokens.
type ResetTokenStore interface {
	Issue(ctx context.Context, userID uint) (string, error)
	Consume(ctx context.Context, token string) (uint, error)
}

// PasswordResetMailer delivers the reset link to the account owner.
type PasswordResetMailer interface {
	SendPasswordResetEmail(to, token string) error
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RequestPasswordResetExecutor interface {
	Execute(ctx context.Context, cmd RequestPasswordResetCommand) error
}

type ResetPasswordExecutor interface {
	Execute(ctx context.Context, cmd ResetPasswordCommand) error
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}
