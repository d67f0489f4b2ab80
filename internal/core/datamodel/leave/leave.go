package leave

import "time"

type LeaveType struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	Status    int       `gorm:"column:status;default:1"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

type Leave struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null"`
	LeaveTypeID int64     `gorm:"column:leave_type_id;not null"`
	FromDate    time.Time `gorm:"column:from_date;type:date;not null"`
	ToDate      time.Time `gorm:"column:to_date;type:date;not null"`
	Reasons     string    `gorm:"column:reasons;not null"`
	DocumentURL string    `gorm:"column:document_url"`
	LeaveStatus string    `gorm:"column:leave_status;default:pending"`
	ApprovedBy  *int64    `gorm:"column:approved_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Leave) TableName() string {
	return "leaves"
}
