package auth_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bootesnull/hrportal/internal"
	"github.com/bootesnull/hrportal/internal/auth"
)

// MockAuthorizer implements auth.PermissionAuthorizer for testing
type MockAuthorizer struct {
	granted map[string]bool
	err     error
	calls   int
}

func NewMockAuthorizer() *MockAuthorizer {
	return &MockAuthorizer{granted: make(map[string]bool)}
}

func (m *MockAuthorizer) HasPermission(_ context.Context, _ int64, permission string) (bool, error) {
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	return m.granted[permission], nil
}

var _ = Describe("RBAC Authorization Middleware", func() {
	var (
		authorizer *MockAuthorizer
		authz      *auth.RBACAuthorization
		next       http.Handler
		nextCalled bool
	)

	requestAs := func(user *auth.User) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if user != nil {
			req = req.WithContext(auth.ContextWithUser(req.Context(), user))
		}
		return req
	}

	decodeMessage := func(w *httptest.ResponseRecorder) string {
		var body map[string]any
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		message, _ := body["message"].(string)
		return message
	}

	BeforeEach(func() {
		authorizer = NewMockAuthorizer()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		authz = auth.NewRBACAuthorization(authorizer, logger)
		nextCalled = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusOK)
		})
	})

	Describe("RequireAdmin", func() {
		It("should admit the super admin role", func() {
			w := httptest.NewRecorder()
			user := &auth.User{ID: 1, RoleID: auth.SuperAdminRoleID, IsActive: true}

			authz.RequireAdmin()(next).ServeHTTP(w, requestAs(user))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
		})

		It("should reject every other role", func() {
			w := httptest.NewRecorder()
			user := &auth.User{ID: 2, RoleID: auth.DefaultEmployeeRoleID, IsActive: true}

			authz.RequireAdmin()(next).ServeHTTP(w, requestAs(user))

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(nextCalled).To(BeFalse())
			Expect(decodeMessage(w)).To(Equal("Access denied!"))
		})

		It("should reject requests without an authenticated user", func() {
			w := httptest.NewRecorder()

			authz.RequireAdmin()(next).ServeHTTP(w, requestAs(nil))

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})

		It("should never consult the grant store", func() {
			w := httptest.NewRecorder()
			user := &auth.User{ID: 1, RoleID: auth.SuperAdminRoleID, IsActive: true}

			authz.RequireAdmin()(next).ServeHTTP(w, requestAs(user))

			w = httptest.NewRecorder()
			other := &auth.User{ID: 2, RoleID: auth.DefaultEmployeeRoleID, IsActive: true}
			authz.RequireAdmin()(next).ServeHTTP(w, requestAs(other))

			Expect(authorizer.calls).To(BeZero())
		})
	})

	Describe("RequirePermission", func() {
		It("should admit a role with an active grant", func() {
			authorizer.granted["view-reports"] = true
			w := httptest.NewRecorder()
			user := &auth.User{ID: 2, RoleID: 3, IsActive: true}

			authz.RequirePermission("view-reports")(next).ServeHTTP(w, requestAs(user))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
			Expect(authorizer.calls).To(Equal(1))
		})

		It("should reject a role without the grant", func() {
			w := httptest.NewRecorder()
			user := &auth.User{ID: 2, RoleID: 3, IsActive: true}

			authz.RequirePermission("view-reports")(next).ServeHTTP(w, requestAs(user))

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(nextCalled).To(BeFalse())
		})

		It("should surface an unknown permission name as 404", func() {
			authorizer.err = internal.ErrPermissionNotFound
			w := httptest.NewRecorder()
			user := &auth.User{ID: 2, RoleID: 3, IsActive: true}

			authz.RequirePermission("no-such-permission")(next).ServeHTTP(w, requestAs(user))

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(nextCalled).To(BeFalse())
			Expect(decodeMessage(w)).To(Equal("Permission does not exist!"))
		})

		It("should surface lookup failures as 500", func() {
			authorizer.err = internal.NewInternalError("boom", nil)
			w := httptest.NewRecorder()
			user := &auth.User{ID: 2, RoleID: 3, IsActive: true}

			authz.RequirePermission("view-reports")(next).ServeHTTP(w, requestAs(user))

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decodeMessage(w)).To(Equal("Something went wrong!"))
		})

		It("should reject requests without an authenticated user", func() {
			w := httptest.NewRecorder()

			authz.RequirePermission("view-reports")(next).ServeHTTP(w, requestAs(nil))

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(authorizer.calls).To(BeZero())
		})
	})
})
