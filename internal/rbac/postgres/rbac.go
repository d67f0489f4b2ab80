package postgres

import (
	"gorm.io/gorm"

	rbacDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/rbac"
	"github.com/bootesnull/hrportal/internal/rbac"
)

type RBACRepository struct {
	db *gorm.DB
}

func NewRBACRepository(db *gorm.DB) rbac.RepositoryAPI {
	return &RBACRepository{db: db}
}

// ----------------- ROLES -----------------

func (r *RBACRepository) CreateRole(role *rbacDatamodel.Role) error {
	return r.db.Create(role).Error
}

func (r *RBACRepository) GetAllRoles() ([]*rbacDatamodel.Role, error) {
	var roles []*rbacDatamodel.Role
	err := r.db.Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *RBACRepository) GetRoleByID(id int64) (*rbacDatamodel.Role, error) {
	var role rbacDatamodel.Role
	err := r.db.Where("id = ?", id).First(&role).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *RBACRepository) GetRoleByName(name string) (*rbacDatamodel.Role, error) {
	var role rbacDatamodel.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *RBACRepository) UpdateRole(role *rbacDatamodel.Role) error {
	return r.db.Save(role).Error
}

// ----------------- PERMISSIONS -----------------

func (r *RBACRepository) CreatePermission(permission *rbacDatamodel.Permission) error {
	return r.db.Create(permission).Error
}

func (r *RBACRepository) GetAllPermissions() ([]*rbacDatamodel.Permission, error) {
	var permissions []*rbacDatamodel.Permission
	err := r.db.Order("id ASC").Find(&permissions).Error
	return permissions, err
}

func (r *RBACRepository) GetPermissionByID(id int64) (*rbacDatamodel.Permission, error) {
	var permission rbacDatamodel.Permission
	err := r.db.Where("id = ?", id).First(&permission).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &permission, nil
}

func (r *RBACRepository) GetPermissionByName(name string) (*rbacDatamodel.Permission, error) {
	var permission rbacDatamodel.Permission
	err := r.db.Where("permission_name = ?", name).First(&permission).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &permission, nil
}

func (r *RBACRepository) UpdatePermission(permission *rbacDatamodel.Permission) error {
	return r.db.Save(permission).Error
}

// ----------------- ROLE PERMISSIONS -----------------

func (r *RBACRepository) CreateRolePermission(grant *rbacDatamodel.RolePermission) error {
	return r.db.Create(grant).Error
}

func (r *RBACRepository) GetAllRolePermissions() ([]*rbacDatamodel.RolePermission, error) {
	var grants []*rbacDatamodel.RolePermission
	err := r.db.Order("id ASC").Find(&grants).Error
	return grants, err
}

func (r *RBACRepository) GetRolePermissionByID(id int64) (*rbacDatamodel.RolePermission, error) {
	var grant rbacDatamodel.RolePermission
	err := r.db.Where("id = ?", id).First(&grant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &grant, nil
}

func (r *RBACRepository) GetRolePermissionByPair(roleID, permissionID int64) (*rbacDatamodel.RolePermission, error) {
	var grant rbacDatamodel.RolePermission
	err := r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).First(&grant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &grant, nil
}

func (r *RBACRepository) GetRolePermissionsByRole(roleID int64) ([]*rbacDatamodel.RolePermission, error) {
	var grants []*rbacDatamodel.RolePermission
	err := r.db.Where("role_id = ?", roleID).Order("id ASC").Find(&grants).Error
	return grants, err
}

func (r *RBACRepository) UpdateRolePermission(grant *rbacDatamodel.RolePermission) error {
	return r.db.Save(grant).Error
}
