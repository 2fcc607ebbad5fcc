package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/libratrack/alertgate/pkg/domain/alert"
)

type deleteAlertHandler struct {
	logger *logrus.Logger
	repo   alert.Repository
}

func NewDeleteAlertHandler(logger *logrus.Logger, repo alert.Repository) Handler {
	return &deleteAlertHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *deleteAlertHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("alert_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid alert id"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "alert not found"})
		}
		h.logger.WithError(err).Error("failed to delete alert")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete alert"})
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
