package store

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"assetledger/models"
)

func (s *Store) ListAssets(ctx context.Context, tenantID string) ([]models.Asset, error) {
	var assets []models.Asset
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("management_tag, id").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

func (s *Store) GetAsset(ctx context.Context, tenantID, id string) (*models.Asset, error) {
	var asset models.Asset
	err := s.db.WithContext(ctx).
		Preload("AssignedUser").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&asset).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &asset, nil
}

func (s *Store) CreateAsset(ctx context.Context, asset *models.Asset) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(asset).Error; err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	return nil
}

// SaveAsset writes every column of asset. Associations are left untouched.
func (s *Store) SaveAsset(ctx context.Context, asset *models.Asset) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(asset).Error; err != nil {
		return fmt.Errorf("save asset: %w", err)
	}
	return nil
}

func (s *Store) DeleteAsset(ctx context.Context, tenantID, id string) error {
	result := s.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&models.Asset{})
	if result.Error != nil {
		return fmt.Errorf("delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
