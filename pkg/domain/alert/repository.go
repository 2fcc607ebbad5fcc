package alert

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, alert *Alert) error
	// List returns stored alerts newest first. An empty mode means no
	// filter; limit caps the result size.
	List(ctx context.Context, mode DetectionMode, limit int) ([]Alert, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByDetectionMode(ctx context.Context) (map[DetectionMode]int64, error)
	CountByAttackType(ctx context.Context) (map[string]int64, error)
	CountHighPriority(ctx context.Context) (int64, error)
}
