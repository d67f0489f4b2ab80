package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/bootesnull/hrportal/internal/auth"
	"github.com/bootesnull/hrportal/internal/transport"
)

type ServiceAPI interface {
	ListUsers() ([]*User, error)
	GetUser(id int64) (*User, error)
	EditUserDetails(dto EditUserDetailsDTO) (*User, error)
	SetUserStatus(dto UpdateUserStatusDTO) (*User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service    ServiceAPI
	Authorizer auth.PermissionAuthorizer
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, authorizer auth.PermissionAuthorizer) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Authorizer:  authorizer,
	}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "User list fetched successfully!", users)
}

func (h *Handler) ViewUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.Service.GetUser(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "User fetched successfully!", user)
}

func (h *Handler) EditUserDetails(w http.ResponseWriter, r *http.Request) {
	var dto EditUserDetailsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Service.EditUserDetails(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "User details updated successfully!", user)
}

func (h *Handler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	var dto UpdateUserStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Service.SetUserStatus(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "User status updated successfully!", user)
}

// TestPermission probes whether the caller's role holds an active grant for
// the named permission. Unknown permission names return 404, a missing grant
// returns 403.
func (h *Handler) TestPermission(w http.ResponseWriter, r *http.Request) {
	permission := r.URL.Query().Get("permission")
	if permission == "" {
		h.WriteError(w, http.StatusBadRequest, "permission is required")
		return
	}

	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Your session is not valid!")
		return
	}

	granted, err := h.Authorizer.HasPermission(r.Context(), user.RoleID, permission)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if !granted {
		h.WriteError(w, http.StatusForbidden, "Access denied!")
		return
	}

	h.WriteSuccess(w, http.StatusOK, "You are authorized!", map[string]any{
		"role_id":    user.RoleID,
		"permission": permission,
	})
}
