package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/libratrack/alertgate/pkg/domain/alert"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, a *alert.Alert) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *Repository) List(ctx context.Context, mode alert.DetectionMode, limit int) ([]alert.Alert, error) {
	args := m.Called(ctx, mode, limit)
	alerts, _ := args.Get(0).([]alert.Alert)
	return alerts, args.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Repository) CountByDetectionMode(ctx context.Context) (map[alert.DetectionMode]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[alert.DetectionMode]int64)
	return counts, args.Error(1)
}

func (m *Repository) CountByAttackType(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}

func (m *Repository) CountHighPriority(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}
