package leave

import (
	"log/slog"
	"time"

	"github.com/bootesnull/hrportal/internal"
	leaveDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/leave"
)

type RepositoryAPI interface {
	CreateLeaveType(leaveType *leaveDatamodel.LeaveType) error
	GetAllLeaveTypes() ([]*leaveDatamodel.LeaveType, error)
	GetLeaveTypeByID(id int64) (*leaveDatamodel.LeaveType, error)
	GetLeaveTypeByName(name string) (*leaveDatamodel.LeaveType, error)
	UpdateLeaveType(leaveType *leaveDatamodel.LeaveType) error

	CreateLeave(leave *leaveDatamodel.Leave) error
	GetAllLeaves() ([]*leaveDatamodel.Leave, error)
	GetLeavesByUser(userID int64) ([]*leaveDatamodel.Leave, error)
	GetLeaveByID(id int64) (*leaveDatamodel.Leave, error)
	UpdateLeave(leave *leaveDatamodel.Leave) error
	DeleteLeave(id int64) error
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

// ----------------- LEAVE TYPES -----------------

func (s *Service) CreateLeaveType(dto CreateLeaveTypeDTO) (*LeaveType, error) {
	existing, err := s.repo.GetLeaveTypeByName(dto.Name)
	if err != nil {
		s.logger.Error("failed to check leave type name", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create leave type", err)
	}
	if existing != nil {
		return nil, internal.ErrLeaveTypeExists
	}

	leaveType := &leaveDatamodel.LeaveType{
		Name:   dto.Name,
		Status: 1,
	}
	if err := s.repo.CreateLeaveType(leaveType); err != nil {
		s.logger.Error("failed to create leave type", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create leave type", err)
	}

	s.logger.Info("leave type created", "leave_type_id", leaveType.ID, "name", leaveType.Name)
	return LeaveTypeFromDataModel(leaveType), nil
}

func (s *Service) ListLeaveTypes() ([]*LeaveType, error) {
	dataTypes, err := s.repo.GetAllLeaveTypes()
	if err != nil {
		s.logger.Error("failed to list leave types", "error", err)
		return nil, internal.NewInternalError("failed to list leave types", err)
	}

	leaveTypes := make([]*LeaveType, 0, len(dataTypes))
	for _, dataType := range dataTypes {
		leaveTypes = append(leaveTypes, LeaveTypeFromDataModel(dataType))
	}
	return leaveTypes, nil
}

func (s *Service) EditLeaveType(dto EditLeaveTypeDTO) (*LeaveType, error) {
	dataType, err := s.repo.GetLeaveTypeByID(dto.ID)
	if err != nil {
		s.logger.Error("failed to get leave type for edit", "leave_type_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to edit leave type", err)
	}
	if dataType == nil {
		return nil, internal.ErrLeaveTypeNotFound
	}

	dataType.Name = dto.Name
	if err := s.repo.UpdateLeaveType(dataType); err != nil {
		s.logger.Error("failed to update leave type", "leave_type_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to edit leave type", err)
	}

	return LeaveTypeFromDataModel(dataType), nil
}

func (s *Service) SetLeaveTypeStatus(dto UpdateLeaveTypeStatusDTO) (*LeaveType, error) {
	dataType, err := s.repo.GetLeaveTypeByID(dto.ID)
	if err != nil {
		s.logger.Error("failed to get leave type for status update", "leave_type_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to update leave type status", err)
	}
	if dataType == nil {
		return nil, internal.ErrLeaveTypeNotFound
	}

	dataType.Status = dto.Status
	if err := s.repo.UpdateLeaveType(dataType); err != nil {
		s.logger.Error("failed to update leave type status", "leave_type_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to update leave type status", err)
	}

	return LeaveTypeFromDataModel(dataType), nil
}

// ----------------- LEAVES -----------------

func (s *Service) ApplyLeave(userID int64, dto ApplyLeaveDTO, documentURL string) (*Leave, error) {
	leaveType, err := s.repo.GetLeaveTypeByID(dto.LeaveTypeID)
	if err != nil {
		s.logger.Error("failed to check leave type for application", "leave_type_id", dto.LeaveTypeID, "error", err)
		return nil, internal.NewInternalError("failed to apply leave", err)
	}
	if leaveType == nil || leaveType.Status != 1 {
		return nil, internal.ErrLeaveTypeNotFound
	}

	fromDate, _ := time.Parse(dateLayout, dto.FromDate)
	toDate, _ := time.Parse(dateLayout, dto.ToDate)

	leave := &leaveDatamodel.Leave{
		UserID:      userID,
		LeaveTypeID: dto.LeaveTypeID,
		FromDate:    fromDate,
		ToDate:      toDate,
		Reasons:     dto.Reasons,
		DocumentURL: documentURL,
		LeaveStatus: LeaveStatusPending,
	}
	if err := s.repo.CreateLeave(leave); err != nil {
		s.logger.Error("failed to create leave", "user_id", userID, "error", err)
		return nil, internal.NewInternalError("failed to apply leave", err)
	}

	s.logger.Info("leave applied", "leave_id", leave.ID, "user_id", userID, "leave_type_id", dto.LeaveTypeID)

	result := LeaveFromDataModel(leave)
	result.LeaveTypeName = leaveType.Name
	return result, nil
}

func (s *Service) ListLeaves() ([]*Leave, error) {
	dataLeaves, err := s.repo.GetAllLeaves()
	if err != nil {
		s.logger.Error("failed to list leaves", "error", err)
		return nil, internal.NewInternalError("failed to list leaves", err)
	}
	return s.enrich(dataLeaves)
}

func (s *Service) ListLeavesByUser(userID int64) ([]*Leave, error) {
	dataLeaves, err := s.repo.GetLeavesByUser(userID)
	if err != nil {
		s.logger.Error("failed to list leaves for user", "user_id", userID, "error", err)
		return nil, internal.NewInternalError("failed to list leaves", err)
	}
	return s.enrich(dataLeaves)
}

func (s *Service) GetLeave(id int64) (*Leave, error) {
	dataLeave, err := s.repo.GetLeaveByID(id)
	if err != nil {
		s.logger.Error("failed to get leave", "leave_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get leave", err)
	}
	if dataLeave == nil {
		return nil, internal.ErrLeaveNotFound
	}

	leave := LeaveFromDataModel(dataLeave)
	if leaveType, err := s.repo.GetLeaveTypeByID(dataLeave.LeaveTypeID); err == nil && leaveType != nil {
		leave.LeaveTypeName = leaveType.Name
	}
	return leave, nil
}

// SetLeaveStatus approves or rejects a leave, recording who decided.
func (s *Service) SetLeaveStatus(dto UpdateLeaveStatusDTO, approverID int64) (*Leave, error) {
	dataLeave, err := s.repo.GetLeaveByID(dto.ID)
	if err != nil {
		s.logger.Error("failed to get leave for status update", "leave_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to update leave status", err)
	}
	if dataLeave == nil {
		return nil, internal.ErrLeaveNotFound
	}

	dataLeave.LeaveStatus = dto.Status
	dataLeave.ApprovedBy = &approverID
	if err := s.repo.UpdateLeave(dataLeave); err != nil {
		s.logger.Error("failed to update leave status", "leave_id", dto.ID, "error", err)
		return nil, internal.NewInternalError("failed to update leave status", err)
	}

	s.logger.Info("leave status updated", "leave_id", dataLeave.ID, "status", dataLeave.LeaveStatus, "approved_by", approverID)
	return LeaveFromDataModel(dataLeave), nil
}

// DeleteLeave removes a user's own leave while it is still pending.
func (s *Service) DeleteLeave(id, userID int64) error {
	dataLeave, err := s.repo.GetLeaveByID(id)
	if err != nil {
		s.logger.Error("failed to get leave for delete", "leave_id", id, "error", err)
		return internal.NewInternalError("failed to delete leave", err)
	}
	if dataLeave == nil || dataLeave.UserID != userID {
		return internal.ErrLeaveNotFound
	}
	if dataLeave.LeaveStatus != LeaveStatusPending {
		return internal.ErrLeaveNotPending
	}

	if err := s.repo.DeleteLeave(id); err != nil {
		s.logger.Error("failed to delete leave", "leave_id", id, "error", err)
		return internal.NewInternalError("failed to delete leave", err)
	}

	s.logger.Info("leave deleted", "leave_id", id, "user_id", userID)
	return nil
}

func (s *Service) enrich(dataLeaves []*leaveDatamodel.Leave) ([]*Leave, error) {
	typeNames := make(map[int64]string)

	leaves := make([]*Leave, 0, len(dataLeaves))
	for _, dataLeave := range dataLeaves {
		leave := LeaveFromDataModel(dataLeave)

		name, ok := typeNames[dataLeave.LeaveTypeID]
		if !ok {
			leaveType, err := s.repo.GetLeaveTypeByID(dataLeave.LeaveTypeID)
			if err != nil {
				s.logger.Error("failed to resolve leave type", "leave_type_id", dataLeave.LeaveTypeID, "error", err)
				return nil, internal.NewInternalError("failed to list leaves", err)
			}
			if leaveType != nil {
				name = leaveType.Name
			}
			typeNames[dataLeave.LeaveTypeID] = name
		}
		leave.LeaveTypeName = name
		leaves = append(leaves, leave)
	}
	return leaves, nil
}
