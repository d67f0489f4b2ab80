package attendance

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bootesnull/hrportal/internal"
	attendanceDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/attendance"
)

func TestAttendanceService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance Service Suite")
}

// MockRepository implements RepositoryAPI for testing
type MockRepository struct {
	attendances map[int64]*attendanceDatamodel.Attendance
	nextID      int64
	shouldFail  bool
	failError   error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		attendances: make(map[int64]*attendanceDatamodel.Attendance),
		nextID:      1,
	}
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) GetForUserOnDate(userID int64, workDate time.Time) (*attendanceDatamodel.Attendance, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, attendance := range m.attendances {
		if attendance.UserID == userID && attendance.WorkDate.Equal(workDate) {
			return attendance, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) GetAllByUser(userID int64) ([]*attendanceDatamodel.Attendance, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*attendanceDatamodel.Attendance
	for _, attendance := range m.attendances {
		if attendance.UserID == userID {
			result = append(result, attendance)
		}
	}
	return result, nil
}

func (m *MockRepository) Create(attendance *attendanceDatamodel.Attendance) error {
	if m.shouldFail {
		return m.failError
	}
	attendance.ID = m.nextID
	m.nextID++
	m.attendances[attendance.ID] = attendance
	return nil
}

func (m *MockRepository) Update(attendance *attendanceDatamodel.Attendance) error {
	if m.shouldFail {
		return m.failError
	}
	m.attendances[attendance.ID] = attendance
	return nil
}

var _ = Describe("Attendance Service", func() {
	var (
		mockRepo *MockRepository
		service  *Service
		clock    time.Time
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(mockRepo, logger)
		clock = time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return clock }
	})

	Describe("CheckIn", func() {
		It("should record today's check-in", func() {
			attendance, err := service.CheckIn(10)
			Expect(err).NotTo(HaveOccurred())
			Expect(attendance.UserID).To(Equal(int64(10)))
			Expect(attendance.CheckinAt).To(Equal(clock))
			Expect(attendance.WorkDate).To(Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)))
			Expect(attendance.CheckoutAt).To(BeNil())
		})

		It("should reject a second check-in on the same day", func() {
			_, err := service.CheckIn(10)
			Expect(err).NotTo(HaveOccurred())

			clock = clock.Add(2 * time.Hour)
			_, err = service.CheckIn(10)
			Expect(err).To(Equal(internal.ErrAlreadyCheckedIn))
		})

		It("should allow a fresh check-in the next day", func() {
			_, err := service.CheckIn(10)
			Expect(err).NotTo(HaveOccurred())

			clock = clock.Add(24 * time.Hour)
			_, err = service.CheckIn(10)
			Expect(err).NotTo(HaveOccurred())

			attendances, err := service.ListPerUser(10)
			Expect(err).NotTo(HaveOccurred())
			Expect(attendances).To(HaveLen(2))
		})

		It("should not mix attendances across users", func() {
			_, err := service.CheckIn(10)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CheckIn(20)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return an internal error when the repository fails", func() {
			mockRepo.SetShouldFail(true, errors.New("database error"))

			_, err := service.CheckIn(10)
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInternal))
		})
	})

	Describe("CheckOut", func() {
		It("should reject a check-out without a check-in", func() {
			_, err := service.CheckOut(10)
			Expect(err).To(Equal(internal.ErrNotCheckedIn))
		})

		It("should close today's attendance", func() {
			_, err := service.CheckIn(10)
			Expect(err).NotTo(HaveOccurred())

			clock = clock.Add(8 * time.Hour)
			attendance, err := service.CheckOut(10)
			Expect(err).NotTo(HaveOccurred())
			Expect(attendance.CheckoutAt).NotTo(BeNil())
			Expect(*attendance.CheckoutAt).To(Equal(clock))
		})

		It("should move the checkout time forward on repeat", func() {
			_, err := service.CheckIn(10)
			Expect(err).NotTo(HaveOccurred())

			clock = clock.Add(8 * time.Hour)
			first, err := service.CheckOut(10)
			Expect(err).NotTo(HaveOccurred())

			clock = clock.Add(time.Hour)
			second, err := service.CheckOut(10)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.CheckoutAt.After(*first.CheckoutAt)).To(BeTrue())
		})
	})
})
