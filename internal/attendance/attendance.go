package attendance

import (
	"time"

	attendanceDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/attendance"
)

type Attendance struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	WorkDate   time.Time  `json:"work_date"`
	CheckinAt  time.Time  `json:"checkin_at"`
	CheckoutAt *time.Time `json:"checkout_at,omitempty"`
}

func FromDataModel(m *attendanceDatamodel.Attendance) *Attendance {
	return &Attendance{
		ID:         m.ID,
		UserID:     m.UserID,
		WorkDate:   m.WorkDate,
		CheckinAt:  m.CheckinAt,
		CheckoutAt: m.CheckoutAt,
	}
}
