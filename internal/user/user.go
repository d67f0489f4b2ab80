package user

import (
	"time"

	userDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/user"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	RoleID    int64     `json:"role_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	Detail    *Detail   `json:"detail,omitempty"`
}

type Detail struct {
	PersonalEmail    string     `json:"personal_email,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Gender           string     `json:"gender,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Position         string     `json:"position,omitempty"`
	Qualification    string     `json:"qualification,omitempty"`
	MaritalStatus    string     `json:"marital_status,omitempty"`
	DateOfJoining    *time.Time `json:"date_of_joining,omitempty"`
	BloodGroup       string     `json:"blood_group,omitempty"`
	PermanentAddress string     `json:"permanent_address,omitempty"`
	CurrentAddress   string     `json:"current_address,omitempty"`
	ProfileImage     string     `json:"profile_image,omitempty"`
}

func FromDataModel(m *userDatamodel.User) *User {
	return &User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		RoleID:    m.RoleID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func DetailFromDataModel(m *userDatamodel.UserDetail) *Detail {
	return &Detail{
		PersonalEmail:    m.PersonalEmail,
		Phone:            m.Phone,
		Gender:           m.Gender,
		DateOfBirth:      m.DateOfBirth,
		Position:         m.Position,
		Qualification:    m.Qualification,
		MaritalStatus:    m.MaritalStatus,
		DateOfJoining:    m.DateOfJoining,
		BloodGroup:       m.BloodGroup,
		PermanentAddress: m.PermanentAddress,
		CurrentAddress:   m.CurrentAddress,
		ProfileImage:     m.ProfileImage,
	}
}
