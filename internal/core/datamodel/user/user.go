package user

import "time"

type User struct {
	ID           int64     `gorm:"primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	Name         string    `gorm:"column:name;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	RoleID       int64     `gorm:"column:role_id;not null;default:2"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type UserDetail struct {
	ID               int64      `gorm:"primaryKey"`
	UserID           int64      `gorm:"column:user_id;uniqueIndex;not null"`
	PersonalEmail    string     `gorm:"column:personal_email"`
	Phone            string     `gorm:"column:phone"`
	Gender           string     `gorm:"column:gender"`
	DateOfBirth      *time.Time `gorm:"column:date_of_birth;type:date"`
	Position         string     `gorm:"column:position"`
	Qualification    string     `gorm:"column:qualification"`
	MaritalStatus    string     `gorm:"column:marital_status"`
	DateOfJoining    *time.Time `gorm:"column:date_of_joining;type:date"`
	BloodGroup       string     `gorm:"column:blood_group"`
	PermanentAddress string     `gorm:"column:permanent_address"`
	CurrentAddress   string     `gorm:"column:current_address"`
	ProfileImage     string     `gorm:"column:profile_image"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserDetail) TableName() string {
	return "user_details"
}
