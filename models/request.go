package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type RequestType string

const (
	RequestNewHire   RequestType = "new_hire"
	RequestBreakdown RequestType = "breakdown"
	RequestReturn    RequestType = "return"
)

func (t RequestType) Valid() bool {
	switch t {
	case RequestNewHire, RequestBreakdown, RequestReturn:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestCompleted RequestStatus = "completed"
	RequestRejected  RequestStatus = "rejected"
)

var ErrInvalidTransition = errors.New("invalid request status transition")

// requestTransitions lists the allowed next states. Nothing leads back to pending.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:  {RequestApproved, RequestRejected},
	RequestApproved: {RequestCompleted},
}

// Request is a lifecycle request raised by an employee: a new-hire loan,
// a breakdown report or a device return.
type Request struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	TenantID  string         `gorm:"not null;index;type:uuid" json:"tenant_id"`
	Type      RequestType    `gorm:"not null;size:20" json:"type"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Date      time.Time      `gorm:"not null;type:date" json:"date"`
	Status    RequestStatus  `gorm:"not null;size:20;default:pending" json:"status"`
	Detail    string         `gorm:"size:2000" json:"detail"`
	Note      string         `gorm:"size:1000" json:"note"`
	AdminNote string         `gorm:"size:1000" json:"admin_note"`
}

func (r *Request) CanTransition(to RequestStatus) bool {
	for _, next := range requestTransitions[r.Status] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the request to the given status.
func (r *Request) Transition(to RequestStatus) error {
	if !r.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}
	r.Status = to
	return nil
}

func (r *Request) IsBreakdown() bool {
	return r.Type == RequestBreakdown
}
