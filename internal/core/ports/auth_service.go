package ports

import (
	"context"

	"github.com/eduplatform/courses-api/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
}
