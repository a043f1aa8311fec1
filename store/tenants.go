package store

import (
	"context"

	"github.com/google/uuid"

	"assetledger/models"
)

// FindTenant accepts either a tenant id or a tenant name.
func (s *Store) FindTenant(ctx context.Context, ref string) (*models.Tenant, error) {
	var tenant models.Tenant
	q := s.db.WithContext(ctx)
	if _, err := uuid.Parse(ref); err == nil {
		q = q.Where("id = ?", ref)
	} else {
		q = q.Where("name = ?", ref)
	}
	if err := q.First(&tenant).Error; err != nil {
		return nil, notFound(err)
	}
	return &tenant, nil
}
