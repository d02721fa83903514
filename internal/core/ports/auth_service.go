package ports

import (
	"context"

	"github.com/project/incident-report/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, confirmPassword, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}
