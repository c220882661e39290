package repository

import (
	"context"

	"returnex/internal/domain/entity"
)

type AdminUserRepository interface {
	Create(ctx context.Context, user *entity.AdminUser) error
	GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}
