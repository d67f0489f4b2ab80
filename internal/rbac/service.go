package rbac

import (
	"context"
	"log/slog"

	"github.com/bootesnull/hrportal/internal"
	rbacDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/rbac"
	userDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	CreateRole(role *rbacDatamodel.Role) error
	GetAllRoles() ([]*rbacDatamodel.Role, error)
	GetRoleByID(id int64) (*rbacDatamodel.Role, error)
	GetRoleByName(name string) (*rbacDatamodel.Role, error)
	UpdateRole(role *rbacDatamodel.Role) error

	CreatePermission(permission *rbacDatamodel.Permission) error
	GetAllPermissions() ([]*rbacDatamodel.Permission, error)
	GetPermissionByID(id int64) (*rbacDatamodel.Permission, error)
	GetPermissionByName(name string) (*rbacDatamodel.Permission, error)
	UpdatePermission(permission *rbacDatamodel.Permission) error

	CreateRolePermission(grant *rbacDatamodel.RolePermission) error
	GetAllRolePermissions() ([]*rbacDatamodel.RolePermission, error)
	GetRolePermissionByID(id int64) (*rbacDatamodel.RolePermission, error)
	GetRolePermissionByPair(roleID, permissionID int64) (*rbacDatamodel.RolePermission, error)
	GetRolePermissionsByRole(roleID int64) ([]*rbacDatamodel.RolePermission, error)
	UpdateRolePermission(grant *rbacDatamodel.RolePermission) error
}

// UserRepositoryAPI is the slice of the user store the assignment
// operations need.
type UserRepositoryAPI interface {
	GetUserByID(id int64) (*userDatamodel.User, error)
	UpdateUserRole(userID, roleID int64) error
}

type Service struct {
	repo     RepositoryAPI
	userRepo UserRepositoryAPI
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, userRepo UserRepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// ----------------- ROLES -----------------

func (s *Service) CreateRole(dto CreateRoleDTO) (*Role, error) {
	existing, err := s.repo.GetRoleByName(dto.Name)
	if err != nil {
		s.logger.Error("failed to check role name", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create role", err)
	}
	if existing != nil {
		return nil, internal.ErrRoleExists
	}

	role := &rbacDatamodel.Role{
		Name:   dto.Name,
		Status: int(StatusActive),
	}
	if err := s.repo.CreateRole(role); err != nil {
		s.logger.Error("failed to create role", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create role", err)
	}

	s.logger.Info("role created", "role_id", role.ID, "name", role.Name)
	return RoleFromDataModel(role), nil
}

func (s *Service) ListRoles() ([]*Role, error) {
	dataRoles, err := s.repo.GetAllRoles()
	if err != nil {
		s.logger.Error("failed to list roles", "error", err)
		return nil, internal.NewInternalError("failed to list roles", err)
	}

	roles := make([]*Role, 0, len(dataRoles))
	for _, dataRole := range dataRoles {
		roles = append(roles, RoleFromDataModel(dataRole))
	}
	return roles, nil
}

func (s *Service) GetRole(id int64) (*Role, error) {
	dataRole, err := s.repo.GetRoleByID(id)
	if err != nil {
		s.logger.Error("failed to get role", "role_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get role", err)
	}
	if dataRole == nil {
		return nil, internal.ErrRoleNotFound
	}
	return RoleFromDataModel(dataRole), nil
}

func (s *Service) EditRole(dto EditRoleDTO) (*Role, error) {
	dataRole, err := s.repo.GetRoleByID(dto.ID)
	if err != nil {
		s.logger.Error("failed to get role for edit", "role_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to edit role", err)
	}
	if dataRole == nil {
		return nil, internal.ErrRoleNotFound
	}

	dataRole.Name = dto.Name
	if err := s.repo.UpdateRole(dataRole); err != nil {
		s.logger.Error("failed to update role", "role_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to edit role", err)
	}

	s.logger.Info("role updated", "role_id", dataRole.ID, "name", dataRole.Name)
	return RoleFromDataModel(dataRole), nil
}

func (s *Service) SetRoleStatus(dto UpdateRoleStatusDTO) (*Role, error) {
	dataRole, err := s.repo.GetRoleByID(dto.ID)
	if err != nil {
		s.logger.Error("failed to get role for status update", "role_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to update role status", err)
	}
	if dataRole == nil {
		return nil, internal.ErrRoleNotFound
	}

	dataRole.Status = int(dto.Status)
	if err := s.repo.UpdateRole(dataRole); err != nil {
		s.logger.Error("failed to update role status", "role_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to update role status", err)
	}

	s.logger.Info("role status updated", "role_id", dataRole.ID, "status", dataRole.Status)
	return RoleFromDataModel(dataRole), nil
}

// ----------------- PERMISSIONS -----------------

func (s *Service) CreatePermission(dto CreatePermissionDTO) (*Permission, error) {
	existing, err := s.repo.GetPermissionByName(dto.PermissionName)
	if err != nil {
		s.logger.Error("failed to check permission name", "name", dto.PermissionName, "error", err)
		return nil, internal.NewInternalError("failed to create permission", err)
	}
	if existing != nil {
		return nil, internal.ErrPermissionExists
	}

	permission := &rbacDatamodel.Permission{
		PermissionName: dto.PermissionName,
		Parent:         dto.Parent,
		Status:         int(StatusActive),
	}
	if err := s.repo.CreatePermission(permission); err != nil {
		s.logger.Error("failed to create permission", "name", dto.PermissionName, "error", err)
		return nil, internal.NewInternalError("failed to create permission", err)
	}

	s.logger.Info("permission created", "permission_id", permission.ID, "name", permission.PermissionName)
	return PermissionFromDataModel(permission), nil
}

func (s *Service) ListPermissions() ([]*Permission, error) {
	dataPermissions, err := s.repo.GetAllPermissions()
	if err != nil {
		s.logger.Error("failed to list permissions", "error", err)
		return nil, internal.NewInternalError("failed to list permissions", err)
	}

	permissions := make([]*Permission, 0, len(dataPermissions))
	for _, dataPermission := range dataPermissions {
		permissions = append(permissions, PermissionFromDataModel(dataPermission))
	}
	return permissions, nil
}

func (s *Service) GetPermission(id int64) (*Permission, error) {
	dataPermission, err := s.repo.GetPermissionByID(id)
	if err != nil {
		s.logger.Error("failed to get permission", "permission_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get permission", err)
	}
	if dataPermission == nil {
		return nil, internal.ErrPermissionNotFound
	}
	return PermissionFromDataModel(dataPermission), nil
}

func (s *Service) EditPermission(dto EditPermissionDTO) (*Permission, error) {
	dataPermission, err := s.repo.GetPermissionByID(dto.ID)
	if err != nil {
		s.logger.Error("failed to get permission for edit", "permission_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to edit permission", err)
	}
	if dataPermission == nil {
		return nil, internal.ErrPermissionNotFound
	}

	dataPermission.PermissionName = dto.PermissionName
	dataPermission.Parent = dto.Parent
	if err := s.repo.UpdatePermission(dataPermission); err != nil {
		s.logger.Error("failed to update permission", "permission_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to edit permission", err)
	}

	s.logger.Info("permission updated", "permission_id", dataPermission.ID, "name", dataPermission.PermissionName)
	return PermissionFromDataModel(dataPermission), nil
}

func (s *Service) SetPermissionStatus(dto UpdatePermissionStatusDTO) (*Permission, error) {
	dataPermission, err := s.repo.GetPermissionByID(dto.ID)
	if err != nil {
		s.logger.Error("failed to get permission for status update", "permission_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to update permission status", err)
	}
	if dataPermission == nil {
		return nil, internal.ErrPermissionNotFound
	}

	dataPermission.Status = int(dto.Status)
	if err := s.repo.UpdatePermission(dataPermission); err != nil {
		s.logger.Error("failed to update permission status", "permission_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to update permission status", err)
	}

	s.logger.Info("permission status updated", "permission_id", dataPermission.ID, "status", dataPermission.Status)
	return PermissionFromDataModel(dataPermission), nil
}

// ----------------- ROLE PERMISSIONS -----------------

func (s *Service) CreateRolePermission(dto CreateRolePermissionDTO) (*RolePermission, error) {
	role, err := s.repo.GetRoleByID(dto.RoleID)
	if err != nil {
		s.logger.Error("failed to check role for grant", "role_id", dto.RoleID, "error", err)
		return nil, internal.NewInternalError("failed to create role permission", err)
	}
	if role == nil {
		return nil, internal.ErrRoleNotFound
	}

	permission, err := s.repo.GetPermissionByID(dto.PermissionID)
	if err != nil {
		s.logger.Error("failed to check permission for grant", "permission_id", dto.PermissionID, "error", err)
		return nil, internal.NewInternalError("failed to create role permission", err)
	}
	if permission == nil {
		return nil, internal.ErrPermissionNotFound
	}

	existing, err := s.repo.GetRolePermissionByPair(dto.RoleID, dto.PermissionID)
	if err != nil {
		s.logger.Error("failed to check grant pair", "role_id", dto.RoleID, "permission_id", dto.PermissionID, "error", err)
		return nil, internal.NewInternalError("failed to create role permission", err)
	}
	if existing != nil {
		return nil, internal.ErrRolePermissionExists
	}

	grant := &rbacDatamodel.RolePermission{
		RoleID:       dto.RoleID,
		PermissionID: dto.PermissionID,
		Status:       int(StatusActive),
	}
	if err := s.repo.CreateRolePermission(grant); err != nil {
		s.logger.Error("failed to create role permission", "role_id", dto.RoleID, "permission_id", dto.PermissionID, "error", err)
		return nil, internal.NewInternalError("failed to create role permission", err)
	}

	s.logger.Info("role permission created", "grant_id", grant.ID, "role_id", grant.RoleID, "permission_id", grant.PermissionID)
	return RolePermissionFromDataModel(grant), nil
}

// ListRolePermissions returns grants joined with role and permission names.
// A zero roleID means all grants.
func (s *Service) ListRolePermissions(roleID int64) ([]*RolePermissionDetail, error) {
	var (
		dataGrants []*rbacDatamodel.RolePermission
		err        error
	)
	if roleID > 0 {
		dataGrants, err = s.repo.GetRolePermissionsByRole(roleID)
	} else {
		dataGrants, err = s.repo.GetAllRolePermissions()
	}
	if err != nil {
		s.logger.Error("failed to list role permissions", "role_id", roleID, "error", err)
		return nil, internal.NewInternalError("failed to list role permissions", err)
	}

	roleNames := make(map[int64]string)
	permissionNames := make(map[int64]string)

	details := make([]*RolePermissionDetail, 0, len(dataGrants))
	for _, grant := range dataGrants {
		roleName, ok := roleNames[grant.RoleID]
		if !ok {
			role, err := s.repo.GetRoleByID(grant.RoleID)
			if err != nil {
				s.logger.Error("failed to resolve role for grant", "role_id", grant.RoleID, "error", err)
				return nil, internal.NewInternalError("failed to list role permissions", err)
			}
			if role != nil {
				roleName = role.Name
			}
			roleNames[grant.RoleID] = roleName
		}

		permissionName, ok := permissionNames[grant.PermissionID]
		if !ok {
			permission, err := s.repo.GetPermissionByID(grant.PermissionID)
			if err != nil {
				s.logger.Error("failed to resolve permission for grant", "permission_id", grant.PermissionID, "error", err)
				return nil, internal.NewInternalError("failed to list role permissions", err)
			}
			if permission != nil {
				permissionName = permission.PermissionName
			}
			permissionNames[grant.PermissionID] = permissionName
		}

		details = append(details, &RolePermissionDetail{
			ID:             grant.ID,
			RoleID:         grant.RoleID,
			RoleName:       roleName,
			PermissionID:   grant.PermissionID,
			PermissionName: permissionName,
			Status:         Status(grant.Status),
		})
	}
	return details, nil
}

func (s *Service) EditRolePermission(dto EditRolePermissionDTO) (*RolePermission, error) {
	grant, err := s.repo.GetRolePermissionByID(dto.ID)
	if err != nil {
		s.logger.Error("failed to get grant for edit", "grant_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to edit role permission", err)
	}
	if grant == nil {
		return nil, internal.ErrRolePermissionNotFound
	}

	role, err := s.repo.GetRoleByID(dto.RoleID)
	if err != nil {
		s.logger.Error("failed to check role for grant edit", "role_id", dto.RoleID, "error", err)
		return nil, internal.NewInternalError("failed to edit role permission", err)
	}
	if role == nil {
		return nil, internal.ErrRoleNotFound
	}

	permission, err := s.repo.GetPermissionByID(dto.PermissionID)
	if err != nil {
		s.logger.Error("failed to check permission for grant edit", "permission_id", dto.PermissionID, "error", err)
		return nil, internal.NewInternalError("failed to edit role permission", err)
	}
	if permission == nil {
		return nil, internal.ErrPermissionNotFound
	}

	grant.RoleID = dto.RoleID
	grant.PermissionID = dto.PermissionID
	if err := s.repo.UpdateRolePermission(grant); err != nil {
		s.logger.Error("failed to update role permission", "grant_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to edit role permission", err)
	}

	s.logger.Info("role permission updated", "grant_id", grant.ID, "role_id", grant.RoleID, "permission_id", grant.PermissionID)
	return RolePermissionFromDataModel(grant), nil
}

func (s *Service) SetRolePermissionStatus(dto UpdateRolePermissionStatusDTO) (*RolePermission, error) {
	grant, err := s.repo.GetRolePermissionByID(dto.ID)
	if err != nil {
		s.logger.Error("failed to get grant for status update", "grant_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to update role permission status", err)
	}
	if grant == nil {
		return nil, internal.ErrRolePermissionNotFound
	}

	grant.Status = int(dto.Status)
	if err := s.repo.UpdateRolePermission(grant); err != nil {
		s.logger.Error("failed to update role permission status", "grant_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to update role permission status", err)
	}

	s.logger.Info("role permission status updated", "grant_id", grant.ID, "status", grant.Status)
	return RolePermissionFromDataModel(grant), nil
}

// ----------------- ASSIGNMENT -----------------

func (s *Service) AssignRole(dto AssignRoleDTO) (*AssignedRole, error) {
	user, err := s.userRepo.GetUserByID(dto.UserID)
	if err != nil {
		s.logger.Error("failed to check user for assignment", "user_id", dto.UserID, "error", err)
		return nil, internal.NewInternalError("failed to assign role", err)
	}
	if user == nil {
		return nil, internal.ErrUserNotFound
	}

	role, err := s.repo.GetRoleByID(dto.RoleID)
	if err != nil {
		s.logger.Error("failed to check role for assignment", "role_id", dto.RoleID, "error", err)
		return nil, internal.NewInternalError("failed to assign role", err)
	}
	if role == nil {
		return nil, internal.ErrRoleNotFound
	}

	if err := s.userRepo.UpdateUserRole(dto.UserID, dto.RoleID); err != nil {
		s.logger.Error("failed to assign role", "user_id", dto.UserID, "role_id", dto.RoleID, "error", err)
		return nil, internal.NewInternalError("failed to assign role", err)
	}

	s.logger.Info("role assigned", "user_id", dto.UserID, "role_id", dto.RoleID)
	return &AssignedRole{
		UserID:   dto.UserID,
		RoleID:   role.ID,
		RoleName: role.Name,
	}, nil
}

func (s *Service) GetAssignedRole(userID int64) (*AssignedRole, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		s.logger.Error("failed to get user for assignment lookup", "user_id", userID, "error", err)
		return nil, internal.NewInternalError("failed to get assigned role", err)
	}
	if user == nil {
		return nil, internal.ErrUserNotFound
	}

	role, err := s.repo.GetRoleByID(user.RoleID)
	if err != nil {
		s.logger.Error("failed to get role for assignment lookup", "role_id", user.RoleID, "error", err)
		return nil, internal.NewInternalError("failed to get assigned role", err)
	}
	if role == nil {
		return nil, internal.ErrRoleNotFound
	}

	return &AssignedRole{
		UserID:   user.ID,
		RoleID:   role.ID,
		RoleName: role.Name,
	}, nil
}

// ----------------- DECISIONS -----------------

// HasPermission decides whether the role holds an active grant for the named
// permission. Only the grant's status is consulted here: disabling a role or
// a permission row does not revoke grants by itself.
func (s *Service) HasPermission(ctx context.Context, roleID int64, permissionName string) (bool, error) {
	permission, err := s.repo.GetPermissionByName(permissionName)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve permission name", "permission", permissionName, "error", err)
		return false, internal.NewInternalError("failed to check permission", err)
	}
	if permission == nil {
		return false, internal.ErrPermissionNotFound
	}

	grant, err := s.repo.GetRolePermissionByPair(roleID, permission.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to look up grant", "role_id", roleID, "permission_id", permission.ID, "error", err)
		return false, internal.NewInternalError("failed to check permission", err)
	}
	if grant == nil {
		return false, nil
	}
	return Status(grant.Status).IsActive(), nil
}
