package alert

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/libratrack/alertgate/pkg/domain/alert"
	"github.com/libratrack/alertgate/pkg/infra/breaker"
	"github.com/libratrack/alertgate/pkg/infra/metrics"
)

// Recorder persists alerts behind a circuit breaker. When the database is
// down the breaker sheds writes quickly instead of piling up blocked
// handlers; detection callers treat the write as fire-and-forget, so a
// persistence failure never changes a detection answer.
type Recorder struct {
	logger  *logrus.Logger
	repo    alert.Repository
	breaker breaker.CircuitBreaker
}

func NewRecorder(logger *logrus.Logger, repo alert.Repository, cb breaker.CircuitBreaker) *Recorder {
	return &Recorder{
		logger:  logger,
		repo:    repo,
		breaker: cb,
	}
}

func (r *Recorder) Record(ctx context.Context, entity *alert.Alert) error {
	err := r.breaker.Execute(func() error {
		return r.repo.Create(ctx, entity)
	})
	if err != nil {
		metrics.StorageFailures.Inc()
		r.logger.WithError(err).WithFields(logrus.Fields{
			"attack_type":    entity.AttackType,
			"detection_mode": entity.DetectionMode,
		}).Error("failed to store alert")
		return err
	}

	metrics.AlertsStored.WithLabelValues(string(entity.DetectionMode)).Inc()
	return nil
}
