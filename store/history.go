package store

import (
	"context"
	"fmt"

	"assetledger/models"
)

func (s *Store) ListHistory(ctx context.Context, tenantID string) ([]models.EmploymentHistory, error) {
	var entries []models.EmploymentHistory
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("user_id, start_date desc, id desc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list employment history: %w", err)
	}
	return entries, nil
}

func (s *Store) ListUserHistory(ctx context.Context, tenantID string, userID uint) ([]models.EmploymentHistory, error) {
	var entries []models.EmploymentHistory
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		Order("start_date desc, id desc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list employment history: %w", err)
	}
	return entries, nil
}

func (s *Store) CreateHistory(ctx context.Context, entry *models.EmploymentHistory) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create employment history: %w", err)
	}
	return nil
}
