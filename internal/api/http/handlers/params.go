package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/nghetinhport/tos-bigdata-api/pkg/util"
)

const (
	pageMin  = 1
	limitMin = 1
	limitMax = 100
)

// parsePagination validates page/limit before any query runs. Out-of-range
// values are a validation failure, not silently clamped.
func parsePagination(c *fiber.Ctx, defaultLimit int) (page, limit int, err error) {
	page, err = intQuery(c, "page", pageMin)
	if err != nil {
		return 0, 0, err
	}
	limit, err = intQuery(c, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	if page < pageMin {
		return 0, 0, apperrors.NewValidation(fmt.Sprintf("page must be >= %d", pageMin))
	}
	if limit < limitMin || limit > limitMax {
		return 0, 0, apperrors.NewValidation(fmt.Sprintf("limit must be between %d and %d", limitMin, limitMax))
	}
	return page, limit, nil
}

func intQuery(c *fiber.Ctx, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidation(fmt.Sprintf("%s must be an integer", name))
	}
	return val, nil
}
