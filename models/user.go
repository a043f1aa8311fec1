package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// DefaultTenantName is the tenant seeded on first start and used when a
// login names no tenant.
const DefaultTenantName = "Default"

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	// Usernames are unique within a tenant only.
	TenantID           string `gorm:"not null;index;type:uuid;uniqueIndex:idx_tenant_username" json:"tenant_id"`
	Username           string `gorm:"not null;size:100;uniqueIndex:idx_tenant_username" json:"username"`
	FullName           string `gorm:"not null;size:200" json:"full_name"`
	PasswordHash       string `gorm:"not null" json:"-"`
	Role               Role   `gorm:"not null;size:20" json:"role"`
	MustChangePassword bool   `gorm:"not null;default:false" json:"must_change_password"`
	// Company and Department are the profile values used when a user has
	// no employment history.
	Company    string `gorm:"size:200" json:"company"`
	Department string `gorm:"size:200" json:"department"`
}

func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) CanManageAssets() bool {
	return u.IsAdmin()
}

func (u *User) CanViewReports() bool {
	return u.IsAdmin()
}

// CanAccessUser reports whether u may see another user's requests and history.
func (u *User) CanAccessUser(userID uint) bool {
	if u.IsAdmin() {
		return true
	}
	return u.ID == userID
}
