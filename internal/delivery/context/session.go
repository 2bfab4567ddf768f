package context

import (
	"github.com/labstack/echo/v4"

	"blooddonor/internal/domain/entity"
)

const (
	// KeySubjectID is the key for the authenticated subject's id in echo.Context.
	KeySubjectID ContextKey = "subject_id"

	// KeySubjectRole is the key for the authenticated subject's role in echo.Context.
	KeySubjectRole ContextKey = "subject_role"
)

// SetSubject stores the authenticated subject's identity on the request.
// The id is only meaningful together with the role: donor, hospital and
// admin ids live in separate identity sets and may collide numerically.
func SetSubject(c echo.Context, id int64, role entity.Role) {
	c.Set(string(KeySubjectID), id)
	c.Set(string(KeySubjectRole), role)
}

// GetSubjectID extracts the authenticated subject's id from echo.Context.
// Returns 0 when the request is unauthenticated.
func GetSubjectID(c echo.Context) int64 {
	if id, ok := c.Get(string(KeySubjectID)).(int64); ok {
		return id
	}

	return 0
}

// GetSubjectRole extracts the authenticated subject's role from echo.Context.
func GetSubjectRole(c echo.Context) entity.Role {
	if role, ok := c.Get(string(KeySubjectRole)).(entity.Role); ok {
		return role
	}

	return ""
}
