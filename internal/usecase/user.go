package usecase

import (
	"bookjourney/internal/entity"
	"context"
)

type UserRepository interface {
	// Create inserts a new user and fills in the generated ID and
	// timestamps. Returns ErrAlreadyExists when the username is taken.
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
}
