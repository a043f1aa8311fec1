package store

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"assetledger/models"
)

// ListRequests returns the tenant's requests oldest first. A non-nil userID
// restricts the list to that user's own requests.
func (s *Store) ListRequests(ctx context.Context, tenantID string, userID *uint) ([]models.Request, error) {
	query := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var requests []models.Request
	if err := query.Order("date, id").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return requests, nil
}

func (s *Store) GetRequest(ctx context.Context, tenantID string, id uint) (*models.Request, error) {
	var req models.Request
	err := s.db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, id).First(&req).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &req, nil
}

func (s *Store) CreateRequest(ctx context.Context, req *models.Request) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error; err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return nil
}

func (s *Store) SaveRequest(ctx context.Context, req *models.Request) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(req).Error; err != nil {
		return fmt.Errorf("save request: %w", err)
	}
	return nil
}
