package usecases

import (
	"context"

	"mangedesk/internal/application/user/dto"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type GetUserQuery struct {
	UserID   uint
	Identity user.Identity
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	// Accounts are visible to staff and to their own owner.
	if !query.Identity.IsStaff && query.Identity.UserID != query.UserID {
		return nil, errors.NewForbiddenError("you do not have access to this account")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	result := dto.ToUserDTO(u)
	return &result, nil
}
