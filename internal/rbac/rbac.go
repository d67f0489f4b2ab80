package rbac

import (
	"time"

	rbacDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/rbac"
)

// Status is the shared lifecycle flag for roles, permissions and grants.
type Status int

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

func (s Status) Valid() bool {
	return s == StatusInactive || s == StatusActive
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

type Role struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Permission struct {
	ID             int64     `json:"id"`
	PermissionName string    `json:"permission_name"`
	Parent         *int64    `json:"parent"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RolePermission struct {
	ID           int64     `json:"id"`
	RoleID       int64     `json:"role_id"`
	PermissionID int64     `json:"permission_id"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RolePermissionDetail is a grant joined with the role and permission names,
// the shape the listing endpoint returns.
type RolePermissionDetail struct {
	ID             int64  `json:"id"`
	RoleID         int64  `json:"role_id"`
	RoleName       string `json:"role_name"`
	PermissionID   int64  `json:"permission_id"`
	PermissionName string `json:"permission_name"`
	Status         Status `json:"status"`
}

type AssignedRole struct {
	UserID   int64  `json:"user_id"`
	RoleID   int64  `json:"role_id"`
	RoleName string `json:"role_name"`
}

func RoleFromDataModel(m *rbacDatamodel.Role) *Role {
	return &Role{
		ID:        m.ID,
		Name:      m.Name,
		Status:    Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func PermissionFromDataModel(m *rbacDatamodel.Permission) *Permission {
	return &Permission{
		ID:             m.ID,
		PermissionName: m.PermissionName,
		Parent:         m.Parent,
		Status:         Status(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func RolePermissionFromDataModel(m *rbacDatamodel.RolePermission) *RolePermission {
	return &RolePermission{
		ID:           m.ID,
		RoleID:       m.RoleID,
		PermissionID: m.PermissionID,
		Status:       Status(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
