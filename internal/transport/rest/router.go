package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/bootesnull/hrportal/internal/attendance"
	"github.com/bootesnull/hrportal/internal/auth"
	"github.com/bootesnull/hrportal/internal/leave"
	"github.com/bootesnull/hrportal/internal/rbac"
	"github.com/bootesnull/hrportal/internal/transport/middleware"
	"github.com/bootesnull/hrportal/internal/transport/swagger"
	"github.com/bootesnull/hrportal/internal/user"
)

// RegisterAllRoutes wires every handler into the router. The rbac surface is
// reserved for the super admin, everything else behind auth relies on the
// grant store or the caller's own identity.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	authz *auth.RBACAuthorization,
	rbacHandler *rbac.Handler,
	userHandler *user.Handler,
	leaveHandler *leave.Handler,
	attendanceHandler *attendance.Handler,
	uploadDir string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec and Swagger UI at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	// Uploaded leave documents
	router.Handle("/uploads/documents/*",
		http.StripPrefix("/uploads/documents/", http.FileServer(http.Dir(uploadDir))))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Post("/sign-up", authHandler.SignUp)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.RefreshToken)
		r.Post("/logout", authHandler.Logout)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			// RBAC administration, super admin only
			pr.Route("/rbac", func(ar chi.Router) {
				ar.Use(authz.RequireAdmin())

				ar.Post("/role/store", rbacHandler.StoreRole)
				ar.Get("/role/list", rbacHandler.ListRoles)
				ar.Get("/role/view/{id}", rbacHandler.ViewRole)
				ar.Post("/role/edit", rbacHandler.EditRole)
				ar.Post("/role/update-status", rbacHandler.UpdateRoleStatus)

				ar.Post("/permission/store", rbacHandler.StorePermission)
				ar.Get("/permission/list", rbacHandler.ListPermissions)
				ar.Get("/permission/get-by-id/{id}", rbacHandler.GetPermissionByID)
				ar.Post("/permission/edit", rbacHandler.EditPermission)
				ar.Post("/permission/update-status", rbacHandler.UpdatePermissionStatus)

				ar.Post("/allow-role-permission/store", rbacHandler.StoreRolePermission)
				ar.Get("/allow-role-permission/view", rbacHandler.ViewRolePermissions)
				ar.Post("/allow-role-permission/edit", rbacHandler.EditRolePermission)
				ar.Post("/allow-role-permission/update-status", rbacHandler.UpdateRolePermissionStatus)

				ar.Post("/assign-role/assign", rbacHandler.AssignRole)
				ar.Post("/assign-role/edit-role", rbacHandler.EditAssignedRole)
				ar.Get("/assign-role/view", rbacHandler.ViewAssignedRole)
			})

			// User routes
			pr.Route("/user", func(ur chi.Router) {
				ur.Get("/test-permission", userHandler.TestPermission)
				ur.Get("/view/{id}", userHandler.ViewUser)
				ur.Post("/edit-user-details", userHandler.EditUserDetails)

				ur.Group(func(aur chi.Router) {
					aur.Use(authz.RequireAdmin())
					aur.Get("/list", userHandler.ListUsers)
					aur.Post("/update-status", userHandler.UpdateUserStatus)
				})
			})

			// Leave type routes
			pr.Route("/leave-types", func(lr chi.Router) {
				lr.Get("/list", leaveHandler.ListLeaveTypes)

				lr.Group(func(alr chi.Router) {
					alr.Use(authz.RequireAdmin())
					alr.Post("/store", leaveHandler.StoreLeaveType)
					alr.Post("/edit", leaveHandler.EditLeaveType)
					alr.Post("/update-status", leaveHandler.UpdateLeaveTypeStatus)
				})
			})

			// Leave routes
			pr.Route("/leaves", func(lr chi.Router) {
				lr.Post("/apply", leaveHandler.ApplyLeave)
				lr.Get("/my", leaveHandler.MyLeaves)
				lr.Get("/view/{id}", leaveHandler.ViewLeave)
				lr.Delete("/{id}", leaveHandler.DeleteLeave)

				lr.Group(func(alr chi.Router) {
					alr.Use(authz.RequireAdmin())
					alr.Get("/list", leaveHandler.ListLeaves)
					alr.Post("/update-status", leaveHandler.UpdateLeaveStatus)
				})
			})

			// Attendance routes
			pr.Route("/checkin-checkout", func(cr chi.Router) {
				cr.Post("/checkin", attendanceHandler.CheckIn)
				cr.Post("/checkout", attendanceHandler.CheckOut)
			})
			pr.Get("/attendance/per-user", attendanceHandler.AttendancePerUser)
		})
	})
}
