package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// keyAdminID is the key for storing the authenticated admin ID in echo.Context.
	keyAdminID ContextKey = "admin_id"

	// keyRoles is the key for storing the authenticated admin's roles in echo.Context.
	keyRoles ContextKey = "roles"
)

// SetAdminID stores the authenticated admin ID in echo.Context.
func SetAdminID(c echo.Context, adminID uuid.UUID) {
	c.Set(string(keyAdminID), adminID)
}

// GetAdminID returns the authenticated admin ID set by the auth middleware.
func GetAdminID(c echo.Context) (uuid.UUID, bool) {
	adminID, ok := c.Get(string(keyAdminID)).(uuid.UUID)
	if !ok || adminID == uuid.Nil {
		return uuid.Nil, false
	}

	return adminID, true
}

// SetRoles stores the authenticated admin's roles in echo.Context.
func SetRoles(c echo.Context, roles []string) {
	c.Set(string(keyRoles), roles)
}

// GetRoles returns the roles set by the auth middleware.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(string(keyRoles)).([]string)

	return roles, ok
}
