package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)

	// Delete removes the account and nulls every requester/author/actor
	// reference that points at it, in one transaction.
	Delete(ctx context.Context, id uint) error
}
