package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bootesnull/hrportal/internal"
)

// PermissionAuthorizer answers whether a role holds an active grant for a
// named permission.
type PermissionAuthorizer interface {
	HasPermission(ctx context.Context, roleID int64, permission string) (bool, error)
}

type RBACAuthorization struct {
	authorizer PermissionAuthorizer
	logger     *slog.Logger
}

func NewRBACAuthorization(authorizer PermissionAuthorizer, logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{
		authorizer: authorizer,
		logger:     logger,
	}
}

// RequireAdmin only admits the reserved super-admin role. It never consults
// the grant store: the admin path and the permission path stay disjoint.
func (ra *RBACAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				ra.writeError(w, http.StatusUnauthorized, "Your session is not valid!")
				return
			}

			if !user.IsSuperAdmin() {
				ra.logger.WarnContext(r.Context(), "access denied: admin role required",
					"user_id", user.ID, "role_id", user.RoleID)
				ra.writeError(w, http.StatusForbidden, "Access denied!")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission admits any role with an active grant for the named
// permission. An unknown permission name surfaces as 404, a known one
// without an active grant as 403.
func (ra *RBACAuthorization) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				ra.writeError(w, http.StatusUnauthorized, "Your session is not valid!")
				return
			}

			hasAccess, err := ra.authorizer.HasPermission(r.Context(), user.RoleID, permission)
			if err != nil {
				if appErr, isApp := internal.IsAppError(err); isApp && appErr.Type == internal.ErrorTypeNotFound {
					ra.logger.WarnContext(r.Context(), "authorization check on unknown permission",
						"user_id", user.ID, "permission", permission)
					ra.writeError(w, appErr.StatusCode, appErr.Message)
					return
				}
				ra.logger.ErrorContext(r.Context(), "authorization check failed",
					"error", err, "user_id", user.ID, "permission", permission)
				ra.writeError(w, http.StatusInternalServerError, "Something went wrong!")
				return
			}

			if !hasAccess {
				ra.logger.WarnContext(r.Context(), "access denied: insufficient permissions",
					"user_id", user.ID, "role_id", user.RoleID, "required_permission", permission)
				ra.writeError(w, http.StatusForbidden, "Access denied!")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (ra *RBACAuthorization) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"statusCode": status,
		"success":    false,
		"message":    message,
	}); err != nil {
		ra.logger.Error("failed to encode authorization error", "error", err)
	}
}
