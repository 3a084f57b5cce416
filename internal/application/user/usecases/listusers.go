package usecases

import (
	"context"

	"mangedesk/internal/application/user/dto"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

type ListUsersQuery struct {
	Identity user.Identity
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Items    []dto.UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if !query.Identity.IsStaff {
		return nil, errors.NewForbiddenError("only staff can list accounts")
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := uc.userRepo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{
		Items:    dto.ToUserDTOs(users),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
