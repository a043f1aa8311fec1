package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Ownership string

const (
	OwnershipOwned  Ownership = "owned"
	OwnershipRental Ownership = "rental"
	OwnershipLease  Ownership = "lease"
	OwnershipBYOD   Ownership = "byod"
)

func (o Ownership) Valid() bool {
	switch o {
	case OwnershipOwned, OwnershipRental, OwnershipLease, OwnershipBYOD:
		return true
	}
	return false
}

// Recurring reports whether the asset is paid for by a monthly contract fee.
func (o Ownership) Recurring() bool {
	return o == OwnershipRental || o == OwnershipLease
}

type AssetStatus string

const (
	StatusAvailable   AssetStatus = "available"
	StatusInUse       AssetStatus = "in_use"
	StatusRepair      AssetStatus = "repair"
	StatusMaintenance AssetStatus = "maintenance"
	StatusDisposed    AssetStatus = "disposed"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusRepair, StatusMaintenance, StatusDisposed:
		return true
	}
	return false
}

var (
	ErrAssetUnavailable = errors.New("asset is not available for assignment")
	ErrAssetDisposed    = errors.New("asset has been disposed")
)

// Asset is a physical device or contract line owned by a tenant.
// PurchaseDate is the contract start for rental and lease assets.
// PurchaseCost and DepreciationMonths apply to owned assets,
// MonthlyCost and Months to rental and lease assets.
type Asset struct {
	ID                 string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	TenantID           string         `gorm:"not null;index;type:uuid" json:"tenant_id"`
	ManagementTag      string         `gorm:"size:100;index" json:"management_tag"`
	Serial             string         `gorm:"size:200" json:"serial"`
	Model              string         `gorm:"size:200" json:"model"`
	Ownership          Ownership      `gorm:"not null;size:20" json:"ownership"`
	Status             AssetStatus    `gorm:"not null;size:20;default:available" json:"status"`
	PurchaseDate       *time.Time     `gorm:"type:date" json:"purchase_date"`
	ContractEndDate    *time.Time     `gorm:"type:date" json:"contract_end_date"`
	ReturnDate         *time.Time     `gorm:"type:date" json:"return_date"`
	PurchaseCost       int64          `gorm:"default:0" json:"purchase_cost"`
	DepreciationMonths int            `gorm:"default:0" json:"depreciation_months"`
	MonthlyCost        int64          `gorm:"default:0" json:"monthly_cost"`
	Months             int            `gorm:"default:0" json:"months"`
	AssignedUserID     *uint          `gorm:"index" json:"assigned_user_id"`
	AssignedUser       *User          `gorm:"foreignKey:AssignedUserID" json:"assigned_user,omitempty"`
	Accessories        pq.StringArray `gorm:"type:text[]" json:"accessories"`
	Note               string         `gorm:"size:1000" json:"note"`
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusAvailable
	}
	return nil
}

// Validate checks the fields an admin supplies on registration or edit.
func (a *Asset) Validate() error {
	if !a.Ownership.Valid() {
		return fmt.Errorf("invalid ownership %q", a.Ownership)
	}
	if a.Status != "" && !a.Status.Valid() {
		return fmt.Errorf("invalid status %q", a.Status)
	}
	if a.PurchaseCost < 0 || a.MonthlyCost < 0 {
		return errors.New("costs must not be negative")
	}
	if a.DepreciationMonths < 0 || a.Months < 0 {
		return errors.New("month counts must not be negative")
	}
	if a.PurchaseDate != nil && a.ReturnDate != nil && a.ReturnDate.Before(*a.PurchaseDate) {
		return errors.New("return date precedes purchase date")
	}
	return nil
}

func (a *Asset) IsAssigned() bool {
	return a.AssignedUserID != nil
}

// Assign hands an available asset to a user.
func (a *Asset) Assign(userID uint) error {
	if a.Status == StatusDisposed {
		return ErrAssetDisposed
	}
	if a.Status != StatusAvailable {
		return ErrAssetUnavailable
	}
	a.AssignedUserID = &userID
	a.Status = StatusInUse
	return nil
}

// Release takes the asset back into the pool.
func (a *Asset) Release() error {
	if a.Status == StatusDisposed {
		return ErrAssetDisposed
	}
	a.AssignedUserID = nil
	a.AssignedUser = nil
	a.Status = StatusAvailable
	return nil
}

// SendToRepair keeps the current assignment so the cost stays attributed.
func (a *Asset) SendToRepair() error {
	if a.Status == StatusDisposed {
		return ErrAssetDisposed
	}
	a.Status = StatusRepair
	return nil
}

func (a *Asset) StartMaintenance() error {
	if a.Status == StatusDisposed {
		return ErrAssetDisposed
	}
	a.Status = StatusMaintenance
	return nil
}

func (a *Asset) Dispose() error {
	if a.Status == StatusDisposed {
		return ErrAssetDisposed
	}
	a.AssignedUserID = nil
	a.AssignedUser = nil
	a.Status = StatusDisposed
	return nil
}
