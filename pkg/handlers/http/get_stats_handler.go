package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appAlert "github.com/libratrack/alertgate/pkg/app/alert"
)

type getStatsHandler struct {
	logger *logrus.Logger
	finder *appAlert.StatsFinder
}

func NewGetStatsHandler(logger *logrus.Logger, finder *appAlert.StatsFinder) Handler {
	return &getStatsHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *getStatsHandler) Handle(c *fiber.Ctx) error {
	stats, err := h.finder.Find(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to compute alert stats")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute stats"})
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}
