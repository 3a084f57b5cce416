package user

import (
	"fmt"
	"strings"
	"time"
)

// User is the account record owned by the authentication side of the
// system. Ticket and asset records only ever hold its id; deleting a user
// nulls those references rather than cascading.
type User struct {
	id           uint
	username     string
	email        string
	name         string
	passwordHash string
	isStaff      bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, name, passwordHash string, isStaff bool) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		username:     username,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, email, name, passwordHash string,
	isStaff bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsStaff() bool {
	return u.isStaff
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Identity returns the caller identity this account resolves to.
func (u *User) Identity() Identity {
	return Identity{UserID: u.id, IsStaff: u.isStaff}
}

func (u *User) ChangePassword(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) PromoteToStaff() {
	u.isStaff = true
	u.updatedAt = time.Now()
}
