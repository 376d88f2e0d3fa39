package app

import (
	"context"
	"strings"

	"careerhub/internal/common"
	"careerhub/internal/domain/user"
)

// UserService is a read-only lookup surface; user records are provisioned by
// the identity provider, not this service.
type UserService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, common.NewValidationError("invalid request", map[string]string{"email": "email is required"})
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) RoleByEmail(ctx context.Context, email string) (user.Role, error) {
	account, err := s.GetByEmail(ctx, email)
	if err != nil {
		// An unknown user is not an error for role lookup; it simply has no role.
		if common.Is(err, common.CodeNotFound) {
			return user.RoleNone, nil
		}
		return "", err
	}
	return account.Role, nil
}
