package repositories

import (
	"context"

	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
)

// AdminRepository defines admin account data operations
type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*entities.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entities.Admin, error)
	Update(ctx context.Context, admin *entities.Admin) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdatePreferences(ctx context.Context, id uuid.UUID, raw []byte) error
}
