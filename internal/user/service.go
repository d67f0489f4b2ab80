package user

import (
	"log/slog"
	"time"

	"github.com/bootesnull/hrportal/internal"
	userDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	GetAllUsers() ([]*userDatamodel.User, error)
	GetUserByID(id int64) (*userDatamodel.User, error)
	UpdateUser(user *userDatamodel.User) error
	UpdateUserRole(userID, roleID int64) error

	GetUserDetail(userID int64) (*userDatamodel.UserDetail, error)
	SaveUserDetail(detail *userDatamodel.UserDetail) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListUsers() ([]*User, error) {
	dataUsers, err := s.repo.GetAllUsers()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}

	users := make([]*User, 0, len(dataUsers))
	for _, dataUser := range dataUsers {
		users = append(users, FromDataModel(dataUser))
	}
	return users, nil
}

func (s *Service) GetUser(id int64) (*User, error) {
	dataUser, err := s.repo.GetUserByID(id)
	if err != nil {
		s.logger.Error("failed to get user", "user_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get user", err)
	}
	if dataUser == nil {
		return nil, internal.ErrUserNotFound
	}

	user := FromDataModel(dataUser)

	detail, err := s.repo.GetUserDetail(id)
	if err != nil {
		s.logger.Error("failed to get user detail", "user_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get user", err)
	}
	if detail != nil {
		user.Detail = DetailFromDataModel(detail)
	}
	return user, nil
}

func (s *Service) EditUserDetails(dto EditUserDetailsDTO) (*User, error) {
	dataUser, err := s.repo.GetUserByID(dto.UserID)
	if err != nil {
		s.logger.Error("failed to get user for detail edit", "user_id", dto.UserID, "error", err)
		return nil, internal.NewInternalError("failed to edit user details", err)
	}
	if dataUser == nil {
		return nil, internal.ErrUserNotFound
	}

	detail, err := s.repo.GetUserDetail(dto.UserID)
	if err != nil {
		s.logger.Error("failed to get user detail for edit", "user_id", dto.UserID, "error", err)
		return nil, internal.NewInternalError("failed to edit user details", err)
	}
	if detail == nil {
		detail = &userDatamodel.UserDetail{UserID: dto.UserID}
	}

	detail.PersonalEmail = dto.PersonalEmail
	detail.Phone = dto.Phone
	detail.Gender = dto.Gender
	detail.Position = dto.Position
	detail.Qualification = dto.Qualification
	detail.MaritalStatus = dto.MaritalStatus
	detail.BloodGroup = dto.BloodGroup
	detail.PermanentAddress = dto.PermanentAddress
	detail.CurrentAddress = dto.CurrentAddress
	detail.DateOfBirth = parseDate(dto.DateOfBirth)
	detail.DateOfJoining = parseDate(dto.DateOfJoining)

	if err := s.repo.SaveUserDetail(detail); err != nil {
		s.logger.Error("failed to save user detail", "user_id", dto.UserID, "error", err)
		return nil, internal.NewInternalError("failed to edit user details", err)
	}

	s.logger.Info("user details updated", "user_id", dto.UserID)

	user := FromDataModel(dataUser)
	user.Detail = DetailFromDataModel(detail)
	return user, nil
}

func (s *Service) SetUserStatus(dto UpdateUserStatusDTO) (*User, error) {
	dataUser, err := s.repo.GetUserByID(dto.UserID)
	if err != nil {
		s.logger.Error("failed to get user for status update", "user_id", dto.UserID, "error", err)
		return nil, internal.NewInternalError("failed to update user status", err)
	}
	if dataUser == nil {
		return nil, internal.ErrUserNotFound
	}

	dataUser.IsActive = *dto.IsActive
	if err := s.repo.UpdateUser(dataUser); err != nil {
		s.logger.Error("failed to update user status", "user_id", dto.UserID, "error", err)
		return nil, internal.NewInternalError("failed to update user status", err)
	}

	s.logger.Info("user status updated", "user_id", dataUser.ID, "is_active", dataUser.IsActive)
	return FromDataModel(dataUser), nil
}

// parseDate is only called after DTO validation, a failed parse yields nil.
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &parsed
}
