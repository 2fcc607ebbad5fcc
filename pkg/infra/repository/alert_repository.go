package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/libratrack/alertgate/pkg/domain/alert"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) alert.Repository {
	return &AlertRepository{
		db: db,
	}
}

func (r *AlertRepository) Create(ctx context.Context, entity *alert.Alert) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create alert: %w", err)
	}
	return nil
}

func (r *AlertRepository) List(ctx context.Context, mode alert.DetectionMode, limit int) ([]alert.Alert, error) {
	query := r.db.WithContext(ctx).Order("alert_time DESC").Limit(limit)
	if mode != "" {
		query = query.Where("detection_mode = ?", mode)
	}
	var alerts []alert.Alert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

func (r *AlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&alert.Alert{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete alert: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *AlertRepository) CountByDetectionMode(ctx context.Context) (map[alert.DetectionMode]int64, error) {
	type row struct {
		DetectionMode alert.DetectionMode
		Count         int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&alert.Alert{}).
		Select("detection_mode, COUNT(*) as count").
		Group("detection_mode").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count alerts by detection mode: %w", err)
	}
	counts := make(map[alert.DetectionMode]int64, len(rows))
	for _, row := range rows {
		counts[row.DetectionMode] = row.Count
	}
	return counts, nil
}

func (r *AlertRepository) CountByAttackType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		AttackType string
		Count      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&alert.Alert{}).
		Select("attack_type, COUNT(*) as count").
		Group("attack_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count alerts by attack type: %w", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.AttackType] = row.Count
	}
	return counts, nil
}

func (r *AlertRepository) CountHighPriority(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&alert.Alert{}).
		Where("rule_priority >= ?", alert.HighPriorityThreshold).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count high priority alerts: %w", err)
	}
	return count, nil
}
