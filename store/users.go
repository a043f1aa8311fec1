package store

import (
	"context"
	"fmt"

	"assetledger/models"
)

// FindUser loads a user by id across tenants. It backs session lookup,
// where the tenant is checked against the token afterwards.
func (s *Store) FindUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, tenantID, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("tenant_id = ? AND username = ?", tenantID, username).First(&user).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) GetUser(ctx context.Context, tenantID string, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, id).First(&user).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context, tenantID string) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("id").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", duplicate(err))
	}
	return nil
}

func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("save user: %w", duplicate(err))
	}
	return nil
}

// DeleteUser soft-deletes a user. History and requests keep their user id.
func (s *Store) DeleteUser(ctx context.Context, tenantID string, id uint) error {
	result := s.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
