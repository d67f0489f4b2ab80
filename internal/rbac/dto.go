package rbac

import "errors"

type CreateRoleDTO struct {
	Name string `json:"name"`
}

func (dto CreateRoleDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("role name is required")
	}
	if len(dto.Name) > 100 {
		return errors.New("role name must be less than 100 characters")
	}
	return nil
}

type EditRoleDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (dto EditRoleDTO) Validate() error {
	if dto.ID <= 0 {
		return errors.New("role id is required")
	}
	if dto.Name == "" {
		return errors.New("role name is required")
	}
	return nil
}

type UpdateRoleStatusDTO struct {
	ID     int64  `json:"id"`
	Status Status `json:"status"`
}

func (dto UpdateRoleStatusDTO) Validate() error {
	if dto.ID <= 0 {
		return errors.New("role id is required")
	}
	if !dto.Status.Valid() {
		return errors.New("status must be either 0 or 1")
	}
	return nil
}

type CreatePermissionDTO struct {
	PermissionName string `json:"permission_name"`
	Parent         *int64 `json:"parent,omitempty"`
}

func (dto CreatePermissionDTO) Validate() error {
	if dto.PermissionName == "" {
		return errors.New("permission name is required")
	}
	if len(dto.PermissionName) > 100 {
		return errors.New("permission name must be less than 100 characters")
	}
	return nil
}

type EditPermissionDTO struct {
	ID             int64  `json:"id"`
	PermissionName string `json:"permission_name"`
	Parent         *int64 `json:"parent,omitempty"`
}

func (dto EditPermissionDTO) Validate() error {
	if dto.ID <= 0 {
		return errors.New("permission id is required")
	}
	if dto.PermissionName == "" {
		return errors.New("permission name is required")
	}
	return nil
}

type UpdatePermissionStatusDTO struct {
	ID     int64  `json:"id"`
	Status Status `json:"status"`
}

func (dto UpdatePermissionStatusDTO) Validate() error {
	if dto.ID <= 0 {
		return errors.New("permission id is required")
	}
	if !dto.Status.Valid() {
		return errors.New("status must be either 0 or 1")
	}
	return nil
}

type CreateRolePermissionDTO struct {
	RoleID       int64 `json:"role_id"`
	PermissionID int64 `json:"permission_id"`
}

func (dto CreateRolePermissionDTO) Validate() error {
	if dto.RoleID <= 0 {
		return errors.New("role id is required")
	}
	if dto.PermissionID <= 0 {
		return errors.New("permission id is required")
	}
	return nil
}

type EditRolePermissionDTO struct {
	ID           int64 `json:"id"`
	RoleID       int64 `json:"role_id"`
	PermissionID int64 `json:"permission_id"`
}

func (dto EditRolePermissionDTO) Validate() error {
	if dto.ID <= 0 {
		return errors.New("role permission id is required")
	}
	if dto.RoleID <= 0 {
		return errors.New("role id is required")
	}
	if dto.PermissionID <= 0 {
		return errors.New("permission id is required")
	}
	return nil
}

type UpdateRolePermissionStatusDTO struct {
	ID     int64  `json:"id"`
	Status Status `json:"status"`
}

func (dto UpdateRolePermissionStatusDTO) Validate() error {
	if dto.ID <= 0 {
		return errors.New("role permission id is required")
	}
	if !dto.Status.Valid() {
		return errors.New("status must be either 0 or 1")
	}
	return nil
}

type AssignRoleDTO struct {
	UserID int64 `json:"user_id"`
	RoleID int64 `json:"role_id"`
}

func (dto AssignRoleDTO) Validate() error {
	if dto.UserID <= 0 {
		return errors.New("user id is required")
	}
	if dto.RoleID <= 0 {
		return errors.New("role id is required")
	}
	return nil
}
