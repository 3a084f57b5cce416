package usecases

import (
	"context"
	"strings"

	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	Email string
}

// RequestPasswordResetUseCase issues a single-use reset token and mails it
// to the account owner. Unknown addresses get the same answer as known
// ones so the endpoint cannot be used to enumerate accounts.
type RequestPasswordResetUseCase struct {
	userRepo user.Repository
	tokens   ResetTokenStore
	mailer   PasswordResetMailer
	logger   logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	tokens ResetTokenStore,
	mailer PasswordResetMailer,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		logger:   logger,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	if !strings.Contains(cmd.Email, "@") {
		return errors.NewValidationError("a valid email is required")
	}

	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Infow("password reset requested for unknown email", "email", cmd.Email)
			return nil
		}
		return err
	}

	token, err := uc.tokens.Issue(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue reset token", "user_id", u.ID(), "error", err)
		return errors.NewInternalError("failed to issue reset token")
	}

	if err := uc.mailer.SendPasswordResetEmail(u.Email(), token); err != nil {
		uc.logger.Errorw("failed to send reset email", "user_id", u.ID(), "error", err)
		return errors.NewInternalError("failed to send reset email")
	}

	uc.logger.Infow("password reset email sent", "user_id", u.ID())
	return nil
}
