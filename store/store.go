// Package store reads and writes tenant-scoped records through gorm.
// Every query is filtered by tenant id; callers take the tenant from the
// authenticated session, never from the request body.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"assetledger/report"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// duplicate maps unique-constraint violations to ErrDuplicate. It relies on
// gorm's TranslateError option.
func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// Snapshot loads everything the report engine needs for one tenant.
func (s *Store) Snapshot(ctx context.Context, tenantID string) (report.Input, error) {
	var in report.Input
	var err error
	if in.Assets, err = s.ListAssets(ctx, tenantID); err != nil {
		return in, err
	}
	if in.Users, err = s.ListUsers(ctx, tenantID); err != nil {
		return in, err
	}
	if in.History, err = s.ListHistory(ctx, tenantID); err != nil {
		return in, err
	}
	if in.Requests, err = s.ListRequests(ctx, tenantID, nil); err != nil {
		return in, err
	}
	return in, nil
}
