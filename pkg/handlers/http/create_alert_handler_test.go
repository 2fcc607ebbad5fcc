package http

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appAlert "github.com/libratrack/alertgate/pkg/app/alert"
	"github.com/libratrack/alertgate/pkg/domain/alert"
	"github.com/libratrack/alertgate/pkg/domain/alert/mocks"
	"github.com/libratrack/alertgate/pkg/infra/breaker"
)

func newCreateAlertApp(repo alert.Repository) *fiber.App {
	logger := logrus.New()
	recorder := appAlert.NewRecorder(logger, repo, breaker.NewCircuitBreaker("test", time.Second, 3))
	h := NewCreateAlertHandler(logger, recorder)

	app := fiber.New()
	app.Post("/api/snort-alert", h.Handle)
	return app
}

func TestCreateAlert_Success(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *alert.Alert) bool {
		return a.DetectionMode == alert.ModeSimulated && a.RulePriority == 5
	})).Return(nil)

	app := newCreateAlertApp(repo)

	status, payload := postJSON(t, app, "/api/snort-alert", map[string]interface{}{
		"attack_type":    "PORT SCAN",
		"source_ip":      "10.0.0.1",
		"destination_ip": "10.0.0.2",
		"rule_priority":  5,
		"summary":        "nmap sweep",
	})

	assert.Equal(t, 201, status)
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, string(alert.ModeSimulated), payload["detection_mode"])
	repo.AssertExpectations(t)
}

func TestCreateAlert_ModeIsForcedToSimulated(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *alert.Alert) bool {
		return a.DetectionMode == alert.ModeSimulated
	})).Return(nil)

	app := newCreateAlertApp(repo)

	// A caller claiming detection_mode=real must not be believed.
	status, _ := postJSON(t, app, "/api/snort-alert", map[string]interface{}{
		"attack_type":    "SQL INJECTION",
		"detection_mode": "real",
	})

	assert.Equal(t, 201, status)
	repo.AssertExpectations(t)
}

func TestCreateAlert_MissingAttackType(t *testing.T) {
	repo := new(mocks.Repository)
	app := newCreateAlertApp(repo)

	status, _ := postJSON(t, app, "/api/snort-alert", map[string]interface{}{
		"summary": "no type",
	})

	assert.Equal(t, 400, status)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAlert_StorageFailure(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	app := newCreateAlertApp(repo)

	status, payload := postJSON(t, app, "/api/snort-alert", map[string]interface{}{
		"attack_type": "DDOS",
	})

	assert.Equal(t, 500, status)
	assert.Equal(t, "error", payload["status"])
}
