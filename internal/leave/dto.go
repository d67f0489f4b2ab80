package leave

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

type CreateLeaveTypeDTO struct {
	Name string `json:"name"`
}

func (dto CreateLeaveTypeDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("leave type name is required")
	}
	return nil
}

type EditLeaveTypeDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (dto EditLeaveTypeDTO) Validate() error {
	if dto.ID <= 0 {
		return errors.New("leave type id is required")
	}
	if dto.Name == "" {
		return errors.New("leave type name is required")
	}
	return nil
}

type UpdateLeaveTypeStatusDTO struct {
	ID     int64 `json:"id"`
	Status int   `json:"status"`
}

func (dto UpdateLeaveTypeStatusDTO) Validate() error {
	if dto.ID <= 0 {
		return errors.New("leave type id is required")
	}
	if dto.Status != 0 && dto.Status != 1 {
		return errors.New("status must be either 0 or 1")
	}
	return nil
}

// ApplyLeaveDTO arrives as multipart form fields, dates as YYYY-MM-DD.
type ApplyLeaveDTO struct {
	LeaveTypeID int64
	FromDate    string
	ToDate      string
	Reasons     string
}

func (dto ApplyLeaveDTO) Validate() error {
	if dto.LeaveTypeID <= 0 {
		return errors.New("leave type id is required")
	}
	if dto.Reasons == "" {
		return errors.New("reasons is required")
	}
	from, err := time.Parse(dateLayout, dto.FromDate)
	if err != nil {
		return errors.New("from_date must be in YYYY-MM-DD format")
	}
	to, err := time.Parse(dateLayout, dto.ToDate)
	if err != nil {
		return errors.New("to_date must be in YYYY-MM-DD format")
	}
	if to.Before(from) {
		return errors.New("to_date cannot be before from_date")
	}
	return nil
}

type UpdateLeaveStatusDTO struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (dto UpdateLeaveStatusDTO) Validate() error {
	if dto.ID <= 0 {
		return errors.New("leave id is required")
	}
	if dto.Status != LeaveStatusApproved && dto.Status != LeaveStatusRejected {
		return errors.New("status must be either 'approved' or 'rejected'")
	}
	return nil
}
