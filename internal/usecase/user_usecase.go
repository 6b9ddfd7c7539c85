package usecase

import (
	"context"
	"time"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/pkg/errors"
	"rebooks/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type RegisterInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Register stores a new user. A repeated registration surfaces as a
// conflict error; the route maps it to {acknowledged:false}.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	if role != entity.RoleAdmin && role != entity.RoleSeller && role != entity.RoleBuyer {
		return nil, errors.BadRequest("Invalid role", nil)
	}

	user := &entity.User{
		Email:     input.Email,
		Name:      input.Name,
		Role:      role,
		Verified:  false,
		CreatedAt: time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Registered user %s with role %s", user.Email, user.Role)
	return user, nil
}

func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}

// Verify marks a seller verified together with all of their products.
func (uc *UserUseCase) Verify(ctx context.Context, email string) error {
	return uc.userRepo.Verify(ctx, email)
}

func (uc *UserUseCase) Delete(ctx context.Context, email string) error {
	return uc.userRepo.Delete(ctx, email)
}

func (uc *UserUseCase) ListSellers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.ListByRole(ctx, entity.RoleSeller)
}

func (uc *UserUseCase) ListBuyers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.ListByRole(ctx, entity.RoleBuyer)
}
