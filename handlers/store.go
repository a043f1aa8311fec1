package handlers

import (
	"context"

	"assetledger/models"
	"assetledger/report"
)

// Store is the persistence the handlers need. *store.Store implements it.
type Store interface {
	FindTenant(ctx context.Context, ref string) (*models.Tenant, error)

	FindUser(ctx context.Context, id uint) (*models.User, error)
	FindUserByUsername(ctx context.Context, tenantID, username string) (*models.User, error)
	GetUser(ctx context.Context, tenantID string, id uint) (*models.User, error)
	ListUsers(ctx context.Context, tenantID string) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	SaveUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, tenantID string, id uint) error

	ListAssets(ctx context.Context, tenantID string) ([]models.Asset, error)
	GetAsset(ctx context.Context, tenantID, id string) (*models.Asset, error)
	CreateAsset(ctx context.Context, asset *models.Asset) error
	SaveAsset(ctx context.Context, asset *models.Asset) error
	DeleteAsset(ctx context.Context, tenantID, id string) error

	ListUserHistory(ctx context.Context, tenantID string, userID uint) ([]models.EmploymentHistory, error)
	CreateHistory(ctx context.Context, entry *models.EmploymentHistory) error

	ListRequests(ctx context.Context, tenantID string, userID *uint) ([]models.Request, error)
	GetRequest(ctx context.Context, tenantID string, id uint) (*models.Request, error)
	CreateRequest(ctx context.Context, req *models.Request) error
	SaveRequest(ctx context.Context, req *models.Request) error

	Snapshot(ctx context.Context, tenantID string) (report.Input, error)
}
