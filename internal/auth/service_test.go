package auth_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/bootesnull/hrportal/internal"
	"github.com/bootesnull/hrportal/internal/auth"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

// MockRepository implements auth.RepositoryAPI for testing
type MockRepository struct {
	usersByEmail map[string]*auth.UserAuth
	usersByID    map[int64]*auth.UserAuth
	nextID       int64
	shouldFail   bool
	failError    error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		usersByEmail: make(map[string]*auth.UserAuth),
		usersByID:    make(map[int64]*auth.UserAuth),
		nextID:       1,
	}
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) AddUser(userAuth *auth.UserAuth) {
	if userAuth.ID == 0 {
		userAuth.ID = m.nextID
		m.nextID++
	}
	m.usersByEmail[userAuth.Email] = userAuth
	m.usersByID[userAuth.ID] = userAuth
}

func (m *MockRepository) GetUserAuthByEmail(email string) (*auth.UserAuth, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.usersByEmail[email], nil
}

func (m *MockRepository) GetUserByID(id int64) (*auth.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	userAuth, ok := m.usersByID[id]
	if !ok {
		return nil, nil
	}
	return &userAuth.User, nil
}

func (m *MockRepository) CreateUser(userAuth *auth.UserAuth) error {
	if m.shouldFail {
		return m.failError
	}
	m.AddUser(userAuth)
	return nil
}

var _ = Describe("Auth Service", func() {
	var (
		mockRepo *MockRepository
		tokenGen *auth.JWTTokenGenerator
		service  *auth.Service
	)

	hashFor := func(password string) string {
		hash, err := auth.HashPassword(password, bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		return hash
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		tokenGen = auth.NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
		service = auth.NewService(mockRepo, tokenGen, bcrypt.MinCost)
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			mockRepo.AddUser(&auth.UserAuth{
				User: auth.User{
					Email:    "employee@hrportal.dev",
					Name:     "Employee",
					RoleID:   auth.DefaultEmployeeRoleID,
					IsActive: true,
				},
				PasswordHash: hashFor("password"),
			})
		})

		It("should issue tokens for valid credentials", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Email: "employee@hrportal.dev", Password: "password"})
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())

			claims, err := tokenGen.ValidateAccessToken(tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Email).To(Equal("employee@hrportal.dev"))
			Expect(claims.RoleID).To(Equal(int64(auth.DefaultEmployeeRoleID)))
		})

		It("should reject a wrong password", func() {
			_, err := service.Authenticate(auth.LoginDTO{Email: "employee@hrportal.dev", Password: "wrong-password"})
			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("should reject an unknown email", func() {
			_, err := service.Authenticate(auth.LoginDTO{Email: "nobody@hrportal.dev", Password: "password"})
			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("should reject a deactivated user", func() {
			mockRepo.AddUser(&auth.UserAuth{
				User: auth.User{
					Email:    "inactive@hrportal.dev",
					RoleID:   auth.DefaultEmployeeRoleID,
					IsActive: false,
				},
				PasswordHash: hashFor("password"),
			})

			_, err := service.Authenticate(auth.LoginDTO{Email: "inactive@hrportal.dev", Password: "password"})
			Expect(err).To(Equal(auth.ErrUserInactive))
		})
	})

	Describe("Register", func() {
		It("should create a user with the default employee role", func() {
			user, err := service.Register(auth.SignUpDTO{
				Name:     "New Hire",
				Email:    "hire@hrportal.dev",
				Password: "password123",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(BeNumerically(">", 0))
			Expect(user.RoleID).To(Equal(int64(auth.DefaultEmployeeRoleID)))
			Expect(user.IsActive).To(BeTrue())

			tokens, err := service.Authenticate(auth.LoginDTO{Email: "hire@hrportal.dev", Password: "password123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
		})

		It("should reject a duplicate email", func() {
			_, err := service.Register(auth.SignUpDTO{Name: "First", Email: "hire@hrportal.dev", Password: "password123"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Register(auth.SignUpDTO{Name: "Second", Email: "hire@hrportal.dev", Password: "password123"})
			Expect(err).To(Equal(internal.ErrUserExists))
		})

		It("should reject a short password", func() {
			_, err := service.Register(auth.SignUpDTO{Name: "New Hire", Email: "hire@hrportal.dev", Password: "short"})
			Expect(err).To(HaveOccurred())
		})

		It("should propagate repository failures", func() {
			mockRepo.SetShouldFail(true, errors.New("database error"))

			_, err := service.Register(auth.SignUpDTO{Name: "New Hire", Email: "hire@hrportal.dev", Password: "password123"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RefreshTokens", func() {
		var userAuth *auth.UserAuth

		BeforeEach(func() {
			userAuth = &auth.UserAuth{
				User: auth.User{
					Email:    "employee@hrportal.dev",
					RoleID:   auth.DefaultEmployeeRoleID,
					IsActive: true,
				},
				PasswordHash: hashFor("password"),
			}
			mockRepo.AddUser(userAuth)
		})

		It("should exchange a refresh token for a new pair", func() {
			refreshToken, err := tokenGen.GenerateRefreshToken(userAuth.ID, userAuth.Email, userAuth.RoleID)
			Expect(err).NotTo(HaveOccurred())

			tokens, err := service.RefreshTokens(refreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())
		})

		It("should reject an access token used as a refresh token", func() {
			accessToken, err := tokenGen.GenerateAccessToken(userAuth.ID, userAuth.Email, userAuth.RoleID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.RefreshTokens(accessToken)
			Expect(err).To(Equal(auth.ErrInvalidToken))
		})

		It("should reject a refresh token for a deactivated user", func() {
			refreshToken, err := tokenGen.GenerateRefreshToken(userAuth.ID, userAuth.Email, userAuth.RoleID)
			Expect(err).NotTo(HaveOccurred())

			userAuth.IsActive = false

			_, err = service.RefreshTokens(refreshToken)
			Expect(err).To(Equal(auth.ErrUserInactive))
		})

		It("should reject garbage tokens", func() {
			_, err := service.RefreshTokens("not-a-token")
			Expect(err).To(Equal(auth.ErrInvalidToken))
		})
	})

	Describe("HashPassword", func() {
		It("should round-trip through VerifyPassword", func() {
			hash, err := auth.HashPassword("password", bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())
			Expect(auth.VerifyPassword(hash, "password")).To(Succeed())
		})

		It("should fail on an out-of-range cost instead of yielding an empty hash", func() {
			hash, err := auth.HashPassword("password", bcrypt.MaxCost+1)
			Expect(err).To(HaveOccurred())
			Expect(hash).To(BeEmpty())
		})
	})

	Describe("JWTTokenGenerator", func() {
		It("should reject an expired token", func() {
			expiredGen := auth.NewJWTTokenGenerator("access-secret", "refresh-secret", -time.Minute, -time.Minute)
			token, err := expiredGen.GenerateAccessToken(1, "employee@hrportal.dev", auth.DefaultEmployeeRoleID)
			Expect(err).NotTo(HaveOccurred())

			_, err = expiredGen.ValidateAccessToken(token)
			Expect(err).To(Equal(auth.ErrTokenExpired))
		})

		It("should reject a token signed with a different secret", func() {
			otherGen := auth.NewJWTTokenGenerator("other-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
			token, err := otherGen.GenerateAccessToken(1, "employee@hrportal.dev", auth.DefaultEmployeeRoleID)
			Expect(err).NotTo(HaveOccurred())

			_, err = tokenGen.ValidateAccessToken(token)
			Expect(err).To(Equal(auth.ErrInvalidToken))
		})
	})
})
