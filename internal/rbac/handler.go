package rbac

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/bootesnull/hrportal/internal/transport"
)

type ServiceAPI interface {
	CreateRole(dto CreateRoleDTO) (*Role, error)
	ListRoles() ([]*Role, error)
	GetRole(id int64) (*Role, error)
	EditRole(dto EditRoleDTO) (*Role, error)
	SetRoleStatus(dto UpdateRoleStatusDTO) (*Role, error)

	CreatePermission(dto CreatePermissionDTO) (*Permission, error)
	ListPermissions() ([]*Permission, error)
	GetPermission(id int64) (*Permission, error)
	EditPermission(dto EditPermissionDTO) (*Permission, error)
	SetPermissionStatus(dto UpdatePermissionStatusDTO) (*Permission, error)

	CreateRolePermission(dto CreateRolePermissionDTO) (*RolePermission, error)
	ListRolePermissions(roleID int64) ([]*RolePermissionDetail, error)
	EditRolePermission(dto EditRolePermissionDTO) (*RolePermission, error)
	SetRolePermissionStatus(dto UpdateRolePermissionStatusDTO) (*RolePermission, error)

	AssignRole(dto AssignRoleDTO) (*AssignedRole, error)
	GetAssignedRole(userID int64) (*AssignedRole, error)
	HasPermission(ctx context.Context, roleID int64, permissionName string) (bool, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// ----------------- ROLES -----------------

func (h *Handler) StoreRole(w http.ResponseWriter, r *http.Request) {
	var dto CreateRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := h.Service.CreateRole(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "Role created successfully!", role)
}

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Service.ListRoles()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Role list fetched successfully!", roles)
}

func (h *Handler) ViewRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	role, err := h.Service.GetRole(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Role fetched successfully!", role)
}

func (h *Handler) EditRole(w http.ResponseWriter, r *http.Request) {
	var dto EditRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := h.Service.EditRole(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Role updated successfully!", role)
}

func (h *Handler) UpdateRoleStatus(w http.ResponseWriter, r *http.Request) {
	var dto UpdateRoleStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := h.Service.SetRoleStatus(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Role status updated successfully!", role)
}

// ----------------- PERMISSIONS -----------------

func (h *Handler) StorePermission(w http.ResponseWriter, r *http.Request) {
	var dto CreatePermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	permission, err := h.Service.CreatePermission(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "Permission created successfully!", permission)
}

func (h *Handler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.Service.ListPermissions()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Permission list fetched successfully!", permissions)
}

func (h *Handler) GetPermissionByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid permission id")
		return
	}

	permission, err := h.Service.GetPermission(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Permission fetched successfully!", permission)
}

func (h *Handler) EditPermission(w http.ResponseWriter, r *http.Request) {
	var dto EditPermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	permission, err := h.Service.EditPermission(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Permission updated successfully!", permission)
}

func (h *Handler) UpdatePermissionStatus(w http.ResponseWriter, r *http.Request) {
	var dto UpdatePermissionStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	permission, err := h.Service.SetPermissionStatus(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Permission status updated successfully!", permission)
}

// ----------------- ROLE PERMISSIONS -----------------

func (h *Handler) StoreRolePermission(w http.ResponseWriter, r *http.Request) {
	var dto CreateRolePermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	grant, err := h.Service.CreateRolePermission(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "Role permission created successfully!", grant)
}

func (h *Handler) ViewRolePermissions(w http.ResponseWriter, r *http.Request) {
	var roleID int64
	if raw := r.URL.Query().Get("role_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.WriteError(w, http.StatusBadRequest, "invalid role id")
			return
		}
		roleID = parsed
	}

	grants, err := h.Service.ListRolePermissions(roleID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Role permission list fetched successfully!", grants)
}

func (h *Handler) EditRolePermission(w http.ResponseWriter, r *http.Request) {
	var dto EditRolePermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	grant, err := h.Service.EditRolePermission(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Role permission updated successfully!", grant)
}

func (h *Handler) UpdateRolePermissionStatus(w http.ResponseWriter, r *http.Request) {
	var dto UpdateRolePermissionStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	grant, err := h.Service.SetRolePermissionStatus(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Role permission status updated successfully!", grant)
}

// ----------------- ASSIGNMENT -----------------

func (h *Handler) AssignRole(w http.ResponseWriter, r *http.Request) {
	var dto AssignRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	assigned, err := h.Service.AssignRole(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Role assigned successfully!", assigned)
}

// EditAssignedRole re-points an existing user at a different role. It shares
// the assignment semantics with AssignRole; the route exists separately to
// keep the public API stable.
func (h *Handler) EditAssignedRole(w http.ResponseWriter, r *http.Request) {
	var dto AssignRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	assigned, err := h.Service.AssignRole(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Assigned role updated successfully!", assigned)
}

func (h *Handler) ViewAssignedRole(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	assigned, err := h.Service.GetAssignedRole(userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Assigned role fetched successfully!", assigned)
}
