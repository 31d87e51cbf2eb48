package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ==============================
   Role gate
============================== */

// RequireRoles allows only callers whose token role is in the list.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		if role == "" {
			return fiber.NewError(fiber.StatusForbidden, "role missing from token")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// UserIDFromLocals returns the authenticated user id, empty when absent.
func UserIDFromLocals(c *fiber.Ctx) string {
	s, _ := c.Locals(LocUserID).(string)
	return s
}
