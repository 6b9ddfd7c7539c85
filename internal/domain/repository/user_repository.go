package repository

import (
	"context"

	"rebooks/internal/domain/entity"
)

type UserRepository interface {
	// Create inserts the user keyed by email. Returns a conflict error
	// if a user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Verify marks the user and all products they sell as verified.
	Verify(ctx context.Context, email string) error
	Delete(ctx context.Context, email string) error
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
}
