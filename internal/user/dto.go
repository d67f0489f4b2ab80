package user

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

type EditUserDetailsDTO struct {
	UserID           int64  `json:"user_id"`
	PersonalEmail    string `json:"personal_email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Gender           string `json:"gender,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Position         string `json:"position,omitempty"`
	Qualification    string `json:"qualification,omitempty"`
	MaritalStatus    string `json:"marital_status,omitempty"`
	DateOfJoining    string `json:"date_of_joining,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	PermanentAddress string `json:"permanent_address,omitempty"`
	CurrentAddress   string `json:"current_address,omitempty"`
}

func (dto EditUserDetailsDTO) Validate() error {
	if dto.UserID <= 0 {
		return errors.New("user id is required")
	}
	if dto.DateOfBirth != "" {
		if _, err := time.Parse(dateLayout, dto.DateOfBirth); err != nil {
			return errors.New("date_of_birth must be in YYYY-MM-DD format")
		}
	}
	if dto.DateOfJoining != "" {
		if _, err := time.Parse(dateLayout, dto.DateOfJoining); err != nil {
			return errors.New("date_of_joining must be in YYYY-MM-DD format")
		}
	}
	return nil
}

type UpdateUserStatusDTO struct {
	UserID   int64 `json:"user_id"`
	IsActive *bool `json:"is_active"`
}

func (dto UpdateUserStatusDTO) Validate() error {
	if dto.UserID <= 0 {
		return errors.New("user id is required")
	}
	if dto.IsActive == nil {
		return errors.New("is_active is required")
	}
	return nil
}
