package usecases

import (
	"context"

	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID   uint
	Identity user.Identity
}

// DeleteUserUseCase removes an account. Tickets, comments and history
// entries the user touched survive with their reference nulled; the
// repository performs the set-null pass and the row delete in one
// transaction.
type DeleteUserUseCase struct {
	userRepo  user.Repository
	txManager TransactionRunner
	logger    logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if !cmd.Identity.IsStaff && cmd.Identity.UserID != cmd.UserID {
		return errors.NewForbiddenError("you cannot delete another account")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.userRepo.Delete(txCtx, cmd.UserID)
	})
	if err != nil {
		uc.logger.Warnw("user delete failed", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}
