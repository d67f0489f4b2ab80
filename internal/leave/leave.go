package leave

import (
	"time"

	leaveDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/leave"
)

// Leave status constants
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveType struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Leave struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	LeaveTypeID   int64     `json:"leave_type_id"`
	LeaveTypeName string    `json:"leave_type_name,omitempty"`
	FromDate      time.Time `json:"from_date"`
	ToDate        time.Time `json:"to_date"`
	Reasons       string    `json:"reasons"`
	DocumentURL   string    `json:"document_url,omitempty"`
	LeaveStatus   string    `json:"leave_status"`
	ApprovedBy    *int64    `json:"approved_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (l *Leave) IsPending() bool {
	return l.LeaveStatus == LeaveStatusPending
}

func LeaveTypeFromDataModel(m *leaveDatamodel.LeaveType) *LeaveType {
	return &LeaveType{
		ID:        m.ID,
		Name:      m.Name,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func LeaveFromDataModel(m *leaveDatamodel.Leave) *Leave {
	return &Leave{
		ID:          m.ID,
		UserID:      m.UserID,
		LeaveTypeID: m.LeaveTypeID,
		FromDate:    m.FromDate,
		ToDate:      m.ToDate,
		Reasons:     m.Reasons,
		DocumentURL: m.DocumentURL,
		LeaveStatus: m.LeaveStatus,
		ApprovedBy:  m.ApprovedBy,
		CreatedAt:   m.CreatedAt,
	}
}
