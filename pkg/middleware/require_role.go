package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/user"
)

// RequireRole ensures the authenticated user currently holds one of the
// given roles. The role is re-read from the database rather than trusted
// from the JWT, so demotions take effect before the token expires. Apply
// AFTER the JWT middleware.
func RequireRole(db *ent.Client, roles ...user.Role) echo.MiddlewareFunc {
	allowed := make(map[user.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Authentication required",
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			u, err := db.User.Get(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "user_not_found",
					"message": "User not found",
				})
			}

			// Superadmin passes every role gate.
			if !allowed[u.Role] && u.Role != user.RoleSuperadmin {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":   "insufficient_permissions",
					"message": "You do not have access to this resource",
					"details": map[string]interface{}{
						"current_role": u.Role.String(),
					},
				})
			}

			c.Set("user_role", u.Role.String())

			return next(c)
		}
	}
}

// RequireAdmin ensures the authenticated user has admin or superadmin role.
func RequireAdmin(db *ent.Client) echo.MiddlewareFunc {
	return RequireRole(db, user.RoleAdmin)
}

// RequireStaff ensures the user holds any internal role (not a client).
func RequireStaff(db *ent.Client) echo.MiddlewareFunc {
	return RequireRole(db, user.RoleAdmin, user.RoleSales, user.RoleEmployee)
}
