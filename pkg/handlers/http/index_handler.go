package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/libratrack/alertgate/pkg/version"
)

type indexHandler struct{}

func NewIndexHandler() Handler {
	return &indexHandler{}
}

func (h *indexHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "alertgate - dual-mode detection API",
		"version": version.Version,
		"endpoints": fiber.Map{
			"simulated":      "/api/snort-alert (POST)",
			"real_detection": "/api/detect-injection (POST)",
			"get_alerts":     "/api/alerts (GET)",
			"delete_alert":   "/api/alerts/:alert_id (DELETE)",
			"statistics":     "/api/stats (GET)",
			"health":         "/api/health (GET)",
		},
	})
}
