package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appAlert "github.com/libratrack/alertgate/pkg/app/alert"
	"github.com/libratrack/alertgate/pkg/domain/alert"
)

type createAlertRequest struct {
	AttackType    string `json:"attack_type"`
	SourceIP      string `json:"source_ip"`
	DestinationIP string `json:"destination_ip"`
	RulePriority  int    `json:"rule_priority"`
	Summary       string `json:"summary"`
}

type createAlertHandler struct {
	logger   *logrus.Logger
	recorder *appAlert.Recorder
}

func NewCreateAlertHandler(logger *logrus.Logger, recorder *appAlert.Recorder) Handler {
	return &createAlertHandler{
		logger:   logger,
		recorder: recorder,
	}
}

// Handle ingests a synthetic alert. The detection mode is always forced to
// simulated here; real alerts only ever come from the signature matcher.
func (h *createAlertHandler) Handle(c *fiber.Ctx) error {
	var req createAlertRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind alert request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.AttackType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "attack_type is required"})
	}

	entity := alert.NewSimulatedAlert(req.AttackType, req.SourceIP, req.DestinationIP, req.Summary, req.RulePriority)

	if err := h.recorder.Record(c.Context(), entity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to store alert",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":         "success",
		"message":        "Simulated alert received",
		"detection_mode": alert.ModeSimulated,
		"id":             entity.ID,
	})
}
