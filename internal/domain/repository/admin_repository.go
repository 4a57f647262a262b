package repository

import (
	"context"

	"activator/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrAdminNotFound is returned when an admin is not found.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrDuplicateAdmin is returned when the email is already registered.
	ErrDuplicateAdmin = errors.New("admin already exists")
)

// AdminRepository defines the standard operations for admin persistence.
type AdminRepository interface {
	// CreateAdmin persists a new admin account.
	CreateAdmin(ctx context.Context, admin *entity.Admin) error

	// FindAdminByID retrieves an admin by ID.
	FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindAdminByEmail retrieves an admin by email address.
	FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
