package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

/* ===============================
   Param / query parsing
=================================*/

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid " + name)
	}
	return id, nil
}

// ParseDateQuery accepts RFC3339 or YYYY-MM-DD.
func ParseDateQuery(c *fiber.Ctx, name string) (time.Time, bool) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true
	}
	return time.Time{}, false
}

/* ===============================
   Postgres error mapping
=================================*/

// IsUniqueViolation reports whether err is a unique constraint violation.
// Checks the pq error code first, with a string fallback for wrapped
// drivers (pgx via gorm).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
