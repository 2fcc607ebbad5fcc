package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/libratrack/alertgate/pkg/domain/alert"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type listAlertsHandler struct {
	logger *logrus.Logger
	repo   alert.Repository
}

func NewListAlertsHandler(logger *logrus.Logger, repo alert.Repository) Handler {
	return &listAlertsHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle lists stored alerts newest first, optionally filtered by detection
// mode. An unknown mode is a client error rather than a silent no-filter.
func (h *listAlertsHandler) Handle(c *fiber.Ctx) error {
	var mode alert.DetectionMode
	if modeStr := c.Query("mode"); modeStr != "" {
		mode = alert.DetectionMode(modeStr)
		if !mode.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "mode must be 'simulated' or 'real'",
			})
		}
	}

	limit := defaultListLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if val, err := strconv.Atoi(limitStr); err == nil && val > 0 && val <= maxListLimit {
			limit = val
		}
	}

	alerts, err := h.repo.List(c.Context(), mode, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list alerts")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list alerts"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"total":  len(alerts),
		"alerts": alerts,
	})
}
