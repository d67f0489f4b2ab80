package attendance

import "time"

type Attendance struct {
	ID         int64      `gorm:"primaryKey"`
	UserID     int64      `gorm:"column:user_id;not null;uniqueIndex:idx_attendance_user_day"`
	WorkDate   time.Time  `gorm:"column:work_date;type:date;not null;uniqueIndex:idx_attendance_user_day"`
	CheckinAt  time.Time  `gorm:"column:checkin_at;not null"`
	CheckoutAt *time.Time `gorm:"column:checkout_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}
