package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appAlert "github.com/libratrack/alertgate/pkg/app/alert"
	"github.com/libratrack/alertgate/pkg/detector"
	"github.com/libratrack/alertgate/pkg/domain/alert"
	"github.com/libratrack/alertgate/pkg/infra/metrics"
)

type detectInjectionRequest struct {
	Input         string `json:"input"`
	SourceIP      string `json:"source_ip"`
	DestinationIP string `json:"destination_ip"`
}

type detectInjectionHandler struct {
	logger   *logrus.Logger
	detector *detector.Detector
	recorder *appAlert.Recorder
}

func NewDetectInjectionHandler(
	logger *logrus.Logger,
	det *detector.Detector,
	recorder *appAlert.Recorder,
) Handler {
	return &detectInjectionHandler{
		logger:   logger,
		detector: det,
		recorder: recorder,
	}
}

// Handle classifies the submitted input against the signature table. On a
// match the alert write is fire-and-forget: the security answer goes back to
// the caller even when persistence is down.
func (h *detectInjectionHandler) Handle(c *fiber.Ctx) error {
	var req detectInjectionRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind detection request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.SourceIP == "" {
		req.SourceIP = "0.0.0.0"
	}
	if req.DestinationIP == "" {
		req.DestinationIP = "0.0.0.0"
	}

	result := h.detector.Classify(req.Input)
	if !result.Matched {
		metrics.ClassificationsSafe.Inc()
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "safe",
			"message": "No SQL injection detected",
		})
	}

	metrics.InjectionsDetected.WithLabelValues(result.Label).Inc()
	h.logger.WithFields(logrus.Fields{
		"pattern":   result.Label,
		"source_ip": req.SourceIP,
		"input":     alert.Excerpt(req.Input),
	}).Warn("sql injection detected")

	entity := alert.NewDetectionAlert(result.Label, req.Input, req.SourceIP, req.DestinationIP)
	// Recorder logs its own failures; the detection result is returned
	// regardless.
	_ = h.recorder.Record(c.Context(), entity)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":      "attack_detected",
		"attack_type": alert.AttackTypeSQLInjection,
		"severity":    "HIGH",
		"pattern":     result.Label,
		"input":       alert.Excerpt(req.Input),
	})
}
