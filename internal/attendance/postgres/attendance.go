package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/bootesnull/hrportal/internal/attendance"
	attendanceDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/attendance"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.RepositoryAPI {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) GetForUserOnDate(userID int64, workDate time.Time) (*attendanceDatamodel.Attendance, error) {
	var record attendanceDatamodel.Attendance
	err := r.db.Where("user_id = ? AND work_date = ?", userID, workDate).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) GetAllByUser(userID int64) ([]*attendanceDatamodel.Attendance, error) {
	var records []*attendanceDatamodel.Attendance
	err := r.db.Where("user_id = ?", userID).Order("work_date DESC").Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) Create(record *attendanceDatamodel.Attendance) error {
	return r.db.Create(record).Error
}

func (r *AttendanceRepository) Update(record *attendanceDatamodel.Attendance) error {
	return r.db.Save(record).Error
}
