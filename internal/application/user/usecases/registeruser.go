package usecases

import (
	"context"
	"strings"
	"time"

	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterUserCommand struct {
	Username string
	Email    string
	Name     string
	Password string
}

type RegisterUserResult struct {
	UserID    uint
	Username  string
	CreatedAt time.Time
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	// Accounts self-register as regular users; staff is granted separately.
	u, err := user.NewUser(cmd.Username, cmd.Email, cmd.Name, passwordHash, false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Warnw("user registration failed", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "username", u.Username())

	return &RegisterUserResult{
		UserID:    u.ID(),
		Username:  u.Username(),
		CreatedAt: u.CreatedAt(),
	}, nil
}

func (uc *RegisterUserUseCase) validateCommand(cmd RegisterUserCommand) error {
	if strings.TrimSpace(cmd.Username) == "" {
		return errors.NewValidationError("username is required")
	}
	if len(cmd.Username) > 100 {
		return errors.NewValidationError("username cannot exceed 100 characters")
	}
	if !strings.Contains(cmd.Email, "@") {
		return errors.NewValidationError("a valid email is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
