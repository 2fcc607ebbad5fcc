package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/libratrack/alertgate/pkg/domain/alert"
	"github.com/libratrack/alertgate/pkg/infra/cache"
)

const (
	statsCacheKey = "alerts:stats"
	statsCacheTTL = 30 * time.Second
)

type Stats struct {
	ByDetectionMode    map[alert.DetectionMode]int64 `json:"by_detection_mode"`
	ByAttackType       map[string]int64              `json:"by_attack_type"`
	HighPriorityAlerts int64                         `json:"high_priority_alerts"`
}

// StatsFinder aggregates alert counts, caching the view in Redis for a short
// TTL so dashboards polling /api/stats do not hammer the database.
type StatsFinder struct {
	logger *logrus.Logger
	repo   alert.Repository
	cache  cache.Client
}

func NewStatsFinder(logger *logrus.Logger, repo alert.Repository, cacheClient cache.Client) *StatsFinder {
	return &StatsFinder{
		logger: logger,
		repo:   repo,
		cache:  cacheClient,
	}
}

func (f *StatsFinder) Find(ctx context.Context) (*Stats, error) {
	if cached, err := f.cache.Get(ctx, statsCacheKey); err == nil {
		var stats Stats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		f.logger.Warn("discarding malformed cached stats entry")
	}

	byMode, err := f.repo.CountByDetectionMode(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	byType, err := f.repo.CountByAttackType(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	highPriority, err := f.repo.CountHighPriority(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	stats := &Stats{
		ByDetectionMode:    byMode,
		ByAttackType:       byType,
		HighPriorityAlerts: highPriority,
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := f.cache.Set(ctx, statsCacheKey, string(payload), statsCacheTTL); err != nil {
			f.logger.WithError(err).Warn("failed to cache stats")
		}
	}

	return stats, nil
}
