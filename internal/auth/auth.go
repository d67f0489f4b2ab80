package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// SuperAdminRoleID is the reserved role that bypasses grant lookups
// entirely. The seeder creates it first so it always gets this id.
const SuperAdminRoleID int64 = 1

// DefaultEmployeeRoleID is the role every new sign-up starts with.
const DefaultEmployeeRoleID int64 = 2

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	Register(dto SignUpDTO) (*User, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUserAuth(userID int64) (*User, error)
}

type RepositoryAPI interface {
	GetUserAuthByEmail(email string) (*UserAuth, error)
	GetUserByID(userID int64) (*User, error)
	CreateUser(user *UserAuth) error
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(userID int64, email string, roleID int64) (string, error)
	GenerateRefreshToken(userID int64, email string, roleID int64) (string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

// User is the authenticated principal carried through request context.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	RoleID   int64  `json:"role_id"`
	IsActive bool   `json:"is_active"`
}

func (u *User) IsSuperAdmin() bool {
	return u.RoleID == SuperAdminRoleID
}

// UserAuth is User plus the credential hash, only the repository and the
// service ever see it.
type UserAuth struct {
	User
	PasswordHash string `json:"-"`
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	RoleID int64  `json:"role_id"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUserInactive       = errors.New("user is inactive")
)

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
