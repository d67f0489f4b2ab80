package attendance

import (
	"log/slog"
	"time"

	"github.com/bootesnull/hrportal/internal"
	attendanceDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/attendance"
)

type RepositoryAPI interface {
	GetForUserOnDate(userID int64, workDate time.Time) (*attendanceDatamodel.Attendance, error)
	GetAllByUser(userID int64) ([]*attendanceDatamodel.Attendance, error)
	Create(attendance *attendanceDatamodel.Attendance) error
	Update(attendance *attendanceDatamodel.Attendance) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// CheckIn records the start of a work day. A second check-in on the same
// day is rejected.
func (s *Service) CheckIn(userID int64) (*Attendance, error) {
	now := s.now()
	workDate := truncateToDay(now)

	existing, err := s.repo.GetForUserOnDate(userID, workDate)
	if err != nil {
		s.logger.Error("failed to check existing attendance", "user_id", userID, "error", err)
		return nil, internal.NewInternalError("failed to check in", err)
	}
	if existing != nil {
		return nil, internal.ErrAlreadyCheckedIn
	}

	attendance := &attendanceDatamodel.Attendance{
		UserID:    userID,
		WorkDate:  workDate,
		CheckinAt: now,
	}
	if err := s.repo.Create(attendance); err != nil {
		s.logger.Error("failed to create attendance", "user_id", userID, "error", err)
		return nil, internal.NewInternalError("failed to check in", err)
	}

	s.logger.Info("checked in", "attendance_id", attendance.ID, "user_id", userID)
	return FromDataModel(attendance), nil
}

// CheckOut closes today's attendance. Checking out without a prior check-in
// fails; repeating a check-out moves the checkout time forward.
func (s *Service) CheckOut(userID int64) (*Attendance, error) {
	now := s.now()
	workDate := truncateToDay(now)

	existing, err := s.repo.GetForUserOnDate(userID, workDate)
	if err != nil {
		s.logger.Error("failed to look up attendance for checkout", "user_id", userID, "error", err)
		return nil, internal.NewInternalError("failed to check out", err)
	}
	if existing == nil {
		return nil, internal.ErrNotCheckedIn
	}

	existing.CheckoutAt = &now
	if err := s.repo.Update(existing); err != nil {
		s.logger.Error("failed to update attendance", "attendance_id", existing.ID, "error", err)
		return nil, internal.NewInternalError("failed to check out", err)
	}

	s.logger.Info("checked out", "attendance_id", existing.ID, "user_id", userID)
	return FromDataModel(existing), nil
}

func (s *Service) ListPerUser(userID int64) ([]*Attendance, error) {
	dataAttendances, err := s.repo.GetAllByUser(userID)
	if err != nil {
		s.logger.Error("failed to list attendances", "user_id", userID, "error", err)
		return nil, internal.NewInternalError("failed to list attendances", err)
	}

	attendances := make([]*Attendance, 0, len(dataAttendances))
	for _, dataAttendance := range dataAttendances {
		attendances = append(attendances, FromDataModel(dataAttendance))
	}
	return attendances, nil
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
