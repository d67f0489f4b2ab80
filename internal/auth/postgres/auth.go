package postgres

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/bootesnull/hrportal/internal/auth"
	userDatamodel "github.com/bootesnull/hrportal/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.RepositoryAPI {
	return &Repository{db: db}
}

func (r *Repository) GetUserAuthByEmail(email string) (*auth.UserAuth, error) {
	var userAuth auth.UserAuth
	query := `SELECT id, email, name, password_hash, role_id, is_active FROM users WHERE email = ?`

	row := r.db.Raw(query, email).Row()
	err := row.Scan(&userAuth.ID, &userAuth.Email, &userAuth.Name,
		&userAuth.PasswordHash, &userAuth.RoleID, &userAuth.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &userAuth, nil
}

func (r *Repository) GetUserByID(userID int64) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, email, name, role_id, is_active FROM users WHERE id = ?`

	row := r.db.Raw(query, userID).Row()
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.RoleID, &user.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CreateUser(userAuth *auth.UserAuth) error {
	record := &userDatamodel.User{
		Email:        userAuth.Email,
		Name:         userAuth.Name,
		PasswordHash: userAuth.PasswordHash,
		RoleID:       userAuth.RoleID,
		IsActive:     userAuth.IsActive,
	}
	if err := r.db.Create(record).Error; err != nil {
		return err
	}
	userAuth.ID = record.ID
	return nil
}
