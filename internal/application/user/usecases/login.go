package usecases

import (
	"context"
	"strings"

	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type LoginCommand struct {
	// Login accepts either the username or the email address.
	Login    string
	Password string
}

type LoginResult struct {
	Token            string
	ExpiresInMinutes int
	UserID           uint
	Username         string
	IsStaff          bool
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   AccessTokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens AccessTokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if strings.TrimSpace(cmd.Login) == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("login and password are required")
	}

	u, err := uc.findAccount(ctx, cmd.Login)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same answer as a wrong password so accounts cannot be probed.
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if err := uc.hasher.Verify(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "login", cmd.Login)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Generate(u.ID(), u.IsStaff())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())

	return &LoginResult{
		Token:            token,
		ExpiresInMinutes: uc.tokens.AccessExpMinutes(),
		UserID:           u.ID(),
		Username:         u.Username(),
		IsStaff:          u.IsStaff(),
	}, nil
}

func (uc *LoginUseCase) findAccount(ctx context.Context, login string) (*user.User, error) {
	if strings.Contains(login, "@") {
		return uc.userRepo.FindByEmail(ctx, login)
	}
	return uc.userRepo.FindByUsername(ctx, login)
}
