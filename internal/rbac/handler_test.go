package rbac_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	rbacDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/rbac"
	"github.com/bootesnull/hrportal/internal/rbac"
	rbacPostgres "github.com/bootesnull/hrportal/internal/rbac/postgres"
	"github.com/bootesnull/hrportal/internal/transport"
)

func newRouterFor(pattern string, h http.HandlerFunc) *chi.Mux {
	router := chi.NewRouter()
	router.Get(pattern, h)
	return router
}

type envelopeResponse struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

var _ = Describe("RBAC Handler Integration", func() {
	var (
		db       *gorm.DB
		repo     rbac.RepositoryAPI
		userRepo *MockUserRepository
		service  *rbac.Service
		handler  *rbac.Handler
		slogger  *slog.Logger
	)

	postJSON := func(target string, body any, h http.HandlerFunc) *httptest.ResponseRecorder {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h(w, req)
		return w
	}

	decodeEnvelope := func(w *httptest.ResponseRecorder) envelopeResponse {
		var response envelopeResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		Expect(err).NotTo(HaveOccurred())
		return response
	}

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&rbacDatamodel.Role{}, &rbacDatamodel.Permission{}, &rbacDatamodel.RolePermission{})
		Expect(err).NotTo(HaveOccurred())

		repo = rbacPostgres.NewRBACRepository(db)
		userRepo = NewMockUserRepository()
		service = rbac.NewService(repo, userRepo, slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = rbac.NewHandler(baseHandler, service)
	})

	Describe("StoreRole", func() {
		It("should create a role and wrap it in the response envelope", func() {
			w := postJSON("/rbac/role/store", rbac.CreateRoleDTO{Name: "Manager"}, handler.StoreRole)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			response := decodeEnvelope(w)
			Expect(response.StatusCode).To(Equal(http.StatusCreated))
			Expect(response.Success).To(BeTrue())
			Expect(response.Message).To(Equal("Role created successfully!"))

			var role rbac.Role
			Expect(json.Unmarshal(response.Data, &role)).To(Succeed())
			Expect(role.ID).To(BeNumerically(">", 0))
			Expect(role.Name).To(Equal("Manager"))
		})

		It("should reject a duplicate role name with 400", func() {
			w := postJSON("/rbac/role/store", rbac.CreateRoleDTO{Name: "Manager"}, handler.StoreRole)
			Expect(w.Code).To(Equal(http.StatusCreated))

			w = postJSON("/rbac/role/store", rbac.CreateRoleDTO{Name: "Manager"}, handler.StoreRole)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			response := decodeEnvelope(w)
			Expect(response.Success).To(BeFalse())
			Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("should reject an empty role name", func() {
			w := postJSON("/rbac/role/store", rbac.CreateRoleDTO{Name: ""}, handler.StoreRole)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ListRoles", func() {
		It("should return all stored roles", func() {
			postJSON("/rbac/role/store", rbac.CreateRoleDTO{Name: "Manager"}, handler.StoreRole)
			postJSON("/rbac/role/store", rbac.CreateRoleDTO{Name: "Auditor"}, handler.StoreRole)

			req := httptest.NewRequest(http.MethodGet, "/rbac/role/list", nil)
			w := httptest.NewRecorder()
			handler.ListRoles(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			response := decodeEnvelope(w)
			Expect(response.Success).To(BeTrue())

			var roles []rbac.Role
			Expect(json.Unmarshal(response.Data, &roles)).To(Succeed())
			Expect(roles).To(HaveLen(2))
		})
	})

	Describe("StoreRolePermission", func() {
		It("should return 404 when the referenced role does not exist", func() {
			w := postJSON("/rbac/allow-role-permission/store",
				rbac.CreateRolePermissionDTO{RoleID: 42, PermissionID: 42}, handler.StoreRolePermission)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			response := decodeEnvelope(w)
			Expect(response.Success).To(BeFalse())
		})

		It("should create a grant and reject the duplicate pair", func() {
			roleW := postJSON("/rbac/role/store", rbac.CreateRoleDTO{Name: "Manager"}, handler.StoreRole)
			var role rbac.Role
			Expect(json.Unmarshal(decodeEnvelope(roleW).Data, &role)).To(Succeed())

			permW := postJSON("/rbac/permission/store", rbac.CreatePermissionDTO{PermissionName: "view-reports"}, handler.StorePermission)
			var permission rbac.Permission
			Expect(json.Unmarshal(decodeEnvelope(permW).Data, &permission)).To(Succeed())

			dto := rbac.CreateRolePermissionDTO{RoleID: role.ID, PermissionID: permission.ID}
			w := postJSON("/rbac/allow-role-permission/store", dto, handler.StoreRolePermission)
			Expect(w.Code).To(Equal(http.StatusCreated))

			w = postJSON("/rbac/allow-role-permission/store", dto, handler.StoreRolePermission)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ViewRolePermissions", func() {
		It("should reject a malformed role_id query parameter", func() {
			req := httptest.NewRequest(http.MethodGet, "/rbac/allow-role-permission/view?role_id=abc", nil)
			w := httptest.NewRecorder()
			handler.ViewRolePermissions(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ViewRole", func() {
		It("should return 404 for a missing role", func() {
			req := httptest.NewRequest(http.MethodGet, "/rbac/role/view/99", nil)
			w := httptest.NewRecorder()

			router := newRouterFor("/rbac/role/view/{id}", handler.ViewRole)
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			response := decodeEnvelope(w)
			Expect(response.Success).To(BeFalse())
			Expect(response.StatusCode).To(Equal(http.StatusNotFound))
		})
	})
})
