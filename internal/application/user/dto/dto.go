package dto

import (
	"time"

	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/mapper"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		Name:      u.Name(),
		IsStaff:   u.IsStaff(),
		CreatedAt: u.CreatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []UserDTO {
	return mapper.MapSlice(users, ToUserDTO)
}
