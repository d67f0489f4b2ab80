package user_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bootesnull/hrportal/internal"
	userDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/user"
	"github.com/bootesnull/hrportal/internal/user"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

// MockRepository implements user.RepositoryAPI for testing
type MockRepository struct {
	users      map[int64]*userDatamodel.User
	details    map[int64]*userDatamodel.UserDetail
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		users:   make(map[int64]*userDatamodel.User),
		details: make(map[int64]*userDatamodel.UserDetail),
		nextID:  1,
	}
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) AddUser(u *userDatamodel.User) {
	if u.ID == 0 {
		u.ID = m.nextID
		m.nextID++
	}
	m.users[u.ID] = u
}

func (m *MockRepository) GetAllUsers() ([]*userDatamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*userDatamodel.User
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *MockRepository) GetUserByID(id int64) (*userDatamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.users[id], nil
}

func (m *MockRepository) UpdateUser(u *userDatamodel.User) error {
	if m.shouldFail {
		return m.failError
	}
	m.users[u.ID] = u
	return nil
}

func (m *MockRepository) UpdateUserRole(userID, roleID int64) error {
	if m.shouldFail {
		return m.failError
	}
	u, ok := m.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	u.RoleID = roleID
	return nil
}

func (m *MockRepository) GetUserDetail(userID int64) (*userDatamodel.UserDetail, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.details[userID], nil
}

func (m *MockRepository) SaveUserDetail(detail *userDatamodel.UserDetail) error {
	if m.shouldFail {
		return m.failError
	}
	m.details[detail.UserID] = detail
	return nil
}

var _ = Describe("User Service", func() {
	var (
		mockRepo *MockRepository
		service  *user.Service
	)

	boolPtr := func(b bool) *bool { return &b }

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(mockRepo, logger)

		mockRepo.AddUser(&userDatamodel.User{
			Email:    "employee@hrportal.dev",
			Name:     "Employee",
			RoleID:   2,
			IsActive: true,
		})
	})

	Describe("GetUser", func() {
		It("should return the user without details when none exist", func() {
			result, err := service.GetUser(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Email).To(Equal("employee@hrportal.dev"))
			Expect(result.Detail).To(BeNil())
		})

		It("should return not found for an unknown id", func() {
			_, err := service.GetUser(99)
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})

	Describe("EditUserDetails", func() {
		It("should create details on first edit and update on the next", func() {
			result, err := service.EditUserDetails(user.EditUserDetailsDTO{
				UserID:      1,
				Phone:       "555-0100",
				Position:    "Engineer",
				DateOfBirth: "1990-04-12",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Detail).NotTo(BeNil())
			Expect(result.Detail.Phone).To(Equal("555-0100"))
			Expect(result.Detail.DateOfBirth).NotTo(BeNil())

			result, err = service.EditUserDetails(user.EditUserDetailsDTO{
				UserID:   1,
				Phone:    "555-0200",
				Position: "Senior Engineer",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Detail.Phone).To(Equal("555-0200"))
			Expect(result.Detail.Position).To(Equal("Senior Engineer"))
		})

		It("should return not found for an unknown user", func() {
			_, err := service.EditUserDetails(user.EditUserDetailsDTO{UserID: 99})
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})

	Describe("SetUserStatus", func() {
		It("should deactivate and reactivate a user", func() {
			result, err := service.SetUserStatus(user.UpdateUserStatusDTO{UserID: 1, IsActive: boolPtr(false)})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsActive).To(BeFalse())

			result, err = service.SetUserStatus(user.UpdateUserStatusDTO{UserID: 1, IsActive: boolPtr(true)})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsActive).To(BeTrue())
		})

		It("should return not found for an unknown user", func() {
			_, err := service.SetUserStatus(user.UpdateUserStatusDTO{UserID: 99, IsActive: boolPtr(false)})
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})

	Describe("ListUsers", func() {
		It("should return all users", func() {
			mockRepo.AddUser(&userDatamodel.User{Email: "admin@hrportal.dev", Name: "Admin", RoleID: 1, IsActive: true})

			users, err := service.ListUsers()
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
		})

		It("should return an internal error when the repository fails", func() {
			mockRepo.SetShouldFail(true, errors.New("database error"))

			_, err := service.ListUsers()
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInternal))
		})
	})
})
