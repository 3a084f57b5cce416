package usecases

import (
	"context"

	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo user.Repository
	tokens   ResetTokenStore
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	tokens ResetTokenStore,
	hasher PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if cmd.Token == "" {
		return errors.NewValidationError("reset token is required")
	}
	if len(cmd.NewPassword) < minPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	// Consume is single-use: a second attempt with the same token fails
	// even if this call errors later.
	userID, err := uc.tokens.Consume(ctx, cmd.Token)
	if err != nil {
		return err
	}

	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	passwordHash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to process password")
	}

	if err := u.ChangePassword(passwordHash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update password", "user_id", u.ID(), "error", err)
		return err
	}

	uc.logger.Infow("password reset completed", "user_id", u.ID())
	return nil
}
