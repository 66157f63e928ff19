package handlers

import (
	"errors"

	"fintrack/internal/repository"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondServiceError maps service-layer failures onto HTTP statuses:
// validation → 400, missing rows → 404, everything else → 500 with the
// underlying error logged but not exposed.
func respondServiceError(c *fiber.Ctx, logger *zap.Logger, err error, msg string) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ve.Error(),
		})
	}
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	}
	logger.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}

func parseUserParam(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}
