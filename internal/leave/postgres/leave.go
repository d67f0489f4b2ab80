package postgres

import (
	"gorm.io/gorm"

	leaveDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/leave"
	"github.com/bootesnull/hrportal/internal/leave"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.RepositoryAPI {
	return &LeaveRepository{db: db}
}

// ----------------- LEAVE TYPES -----------------

func (r *LeaveRepository) CreateLeaveType(leaveType *leaveDatamodel.LeaveType) error {
	return r.db.Create(leaveType).Error
}

func (r *LeaveRepository) GetAllLeaveTypes() ([]*leaveDatamodel.LeaveType, error) {
	var leaveTypes []*leaveDatamodel.LeaveType
	err := r.db.Order("id ASC").Find(&leaveTypes).Error
	return leaveTypes, err
}

func (r *LeaveRepository) GetLeaveTypeByID(id int64) (*leaveDatamodel.LeaveType, error) {
	var leaveType leaveDatamodel.LeaveType
	err := r.db.Where("id = ?", id).First(&leaveType).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &leaveType, nil
}

func (r *LeaveRepository) GetLeaveTypeByName(name string) (*leaveDatamodel.LeaveType, error) {
	var leaveType leaveDatamodel.LeaveType
	err := r.db.Where("name = ?", name).First(&leaveType).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &leaveType, nil
}

func (r *LeaveRepository) UpdateLeaveType(leaveType *leaveDatamodel.LeaveType) error {
	return r.db.Save(leaveType).Error
}

// ----------------- LEAVES -----------------

func (r *LeaveRepository) CreateLeave(l *leaveDatamodel.Leave) error {
	return r.db.Create(l).Error
}

func (r *LeaveRepository) GetAllLeaves() ([]*leaveDatamodel.Leave, error) {
	var leaves []*leaveDatamodel.Leave
	err := r.db.Order("id DESC").Find(&leaves).Error
	return leaves, err
}

func (r *LeaveRepository) GetLeavesByUser(userID int64) ([]*leaveDatamodel.Leave, error) {
	var leaves []*leaveDatamodel.Leave
	err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&leaves).Error
	return leaves, err
}

func (r *LeaveRepository) GetLeaveByID(id int64) (*leaveDatamodel.Leave, error) {
	var l leaveDatamodel.Leave
	err := r.db.Where("id = ?", id).First(&l).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *LeaveRepository) UpdateLeave(l *leaveDatamodel.Leave) error {
	return r.db.Save(l).Error
}

func (r *LeaveRepository) DeleteLeave(id int64) error {
	return r.db.Delete(&leaveDatamodel.Leave{}, id).Error
}
