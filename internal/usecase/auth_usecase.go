package usecase

import (
	"context"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/internal/infrastructure/token"
	"rebooks/pkg/errors"
	"rebooks/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	tokenManager *token.Manager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokenManager *token.Manager) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

// GenerateToken mints an access token for a known user. Unknown emails get
// a forbidden error; the route answers 403 with an empty token.
func (uc *AuthUseCase) GenerateToken(ctx context.Context, email string) (string, error) {
	if _, err := uc.userRepo.GetByEmail(ctx, email); err != nil {
		return "", errors.Forbidden("Unknown user", err)
	}

	tok, err := uc.tokenManager.Generate(email)
	if err != nil {
		logger.Error("Failed to sign token for %s: %v", email, err)
		return "", errors.Internal("Failed to generate token", err)
	}

	return tok, nil
}

// HasRole reports whether the stored role for email matches exactly.
func (uc *AuthUseCase) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, nil
		}
		return false, err
	}

	switch role {
	case entity.RoleAdmin:
		return user.IsAdmin(), nil
	case entity.RoleSeller:
		return user.IsSeller(), nil
	case entity.RoleBuyer:
		return user.IsBuyer(), nil
	}
	return false, nil
}
