package postgres

import (
	"gorm.io/gorm"

	userDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/user"
	"github.com/bootesnull/hrportal/internal/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAllUsers() ([]*userDatamodel.User, error) {
	var users []*userDatamodel.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) GetUserByID(id int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdateUser(u *userDatamodel.User) error {
	return r.db.Save(u).Error
}

func (r *UserRepository) UpdateUserRole(userID, roleID int64) error {
	return r.db.Model(&userDatamodel.User{}).Where("id = ?", userID).Update("role_id", roleID).Error
}

func (r *UserRepository) GetUserDetail(userID int64) (*userDatamodel.UserDetail, error) {
	var detail userDatamodel.UserDetail
	err := r.db.Where("user_id = ?", userID).First(&detail).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *UserRepository) SaveUserDetail(detail *userDatamodel.UserDetail) error {
	return r.db.Save(detail).Error
}
