package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeDuplicate    ErrorType = "DUPLICATE"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeMissingField     ErrorCode = "MISSING_FIELD"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	ErrCodeRoleExists             ErrorCode = "ROLE_EXISTS"
	ErrCodeRoleNotFound           ErrorCode = "ROLE_NOT_FOUND"
	ErrCodePermissionExists       ErrorCode = "PERMISSION_EXISTS"
	ErrCodePermissionNotFound     ErrorCode = "PERMISSION_NOT_FOUND"
	ErrCodeRolePermissionExists   ErrorCode = "ROLE_PERMISSION_EXISTS"
	ErrCodeRolePermissionNotFound ErrorCode = "ROLE_PERMISSION_NOT_FOUND"

	ErrCodeUserNotFound  ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists    ErrorCode = "USER_EXISTS"
	ErrCodeUserInactive  ErrorCode = "USER_INACTIVE"
	ErrCodeInvalidLogin  ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken  ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired  ErrorCode = "TOKEN_EXPIRED"
	ErrCodeNotAuthorized ErrorCode = "NOT_AUTHORIZED"

	ErrCodeLeaveTypeNotFound  ErrorCode = "LEAVE_TYPE_NOT_FOUND"
	ErrCodeLeaveTypeExists    ErrorCode = "LEAVE_TYPE_EXISTS"
	ErrCodeLeaveNotFound      ErrorCode = "LEAVE_NOT_FOUND"
	ErrCodeLeaveNotPending    ErrorCode = "LEAVE_NOT_PENDING"
	ErrCodeBadDocumentType    ErrorCode = "BAD_DOCUMENT_TYPE"
	ErrCodeAlreadyCheckedIn   ErrorCode = "ALREADY_CHECKED_IN"
	ErrCodeNotCheckedIn       ErrorCode = "NOT_CHECKED_IN"
	ErrCodeAttendanceNotFound ErrorCode = "ATTENDANCE_NOT_FOUND"
)

type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	copied := *e
	copied.Cause = cause
	return &copied
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewDuplicateError reports a uniqueness violation. The API surfaces these as
// 400 rather than 409 to keep parity with the original service contract.
func NewDuplicateError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeDuplicate,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrRoleExists             = NewDuplicateError("Role has been already created!", ErrCodeRoleExists)
	ErrRoleNotFound           = NewNotFoundError("Role does not exist!", ErrCodeRoleNotFound)
	ErrPermissionExists       = NewDuplicateError("Permission has been already created!", ErrCodePermissionExists)
	ErrPermissionNotFound     = NewNotFoundError("Permission does not exist!", ErrCodePermissionNotFound)
	ErrRolePermissionExists   = NewDuplicateError("Role permission has been already created!", ErrCodeRolePermissionExists)
	ErrRolePermissionNotFound = NewNotFoundError("Role permission does not exist!", ErrCodeRolePermissionNotFound)

	ErrUserNotFound = NewNotFoundError("User id does not exist!", ErrCodeUserNotFound)
	ErrUserExists   = NewDuplicateError("User has been already registered!", ErrCodeUserExists)

	ErrLeaveTypeNotFound = NewNotFoundError("Selected leave type does not exist!", ErrCodeLeaveTypeNotFound)
	ErrLeaveTypeExists   = NewDuplicateError("Leave type has been already created!", ErrCodeLeaveTypeExists)
	ErrLeaveNotFound     = NewNotFoundError("Leave does not exist!", ErrCodeLeaveNotFound)
	ErrLeaveNotPending   = NewValidationError("You can`t delete the leave after rejected or approved!", ErrCodeLeaveNotPending)
	ErrBadDocumentType   = NewValidationError("Only .png, .jpg and .jpeg format allowed!", ErrCodeBadDocumentType)

	ErrAlreadyCheckedIn = NewDuplicateError("You have already checked in today!", ErrCodeAlreadyCheckedIn)
	ErrNotCheckedIn     = NewNotFoundError("You have not checked in today!", ErrCodeNotCheckedIn)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
