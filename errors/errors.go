package errors

import (
	"errors"
	"fmt"
)

// ErrorCode define el código de error
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRADO"
	ErrCodeInvalidCredentials ErrorCode = "CREDENCIALES_INVALIDAS"
	ErrCodeInvalidSession     ErrorCode = "SESION_INVALIDA"
	ErrCodeOAuthExchange      ErrorCode = "OAUTH_EXCHANGE_FAILED"
	ErrCodeInvalidRole        ErrorCode = "INVALID_ROLE"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"

	// Not found
	ErrCodeRoomNotFound        ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeReservationNotFound ErrorCode = "RESERVATION_NOT_FOUND"
	ErrCodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	ErrCodeCommentNotFound     ErrorCode = "COMMENT_NOT_FOUND"

	// Validation errors
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField    ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat    ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidUpload    ErrorCode = "INVALID_UPLOAD"

	// Conflict errors
	ErrCodeRoomUnavailable   ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeUserExists        ErrorCode = "USER_EXISTS"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// AppError es el error estructurado de la aplicación
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError crea un AppError nuevo
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError extrae el AppError de un error, o nil si no lo es
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode indica si err es un AppError con el código dado
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// IsNotFound agrupa los códigos de "no encontrado"
func IsNotFound(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeRoomNotFound, ErrCodeReservationNotFound, ErrCodeUserNotFound, ErrCodeCommentNotFound:
		return true
	}
	return false
}

// IsConflict agrupa los códigos de conflicto (carrera perdida o transición inválida)
func IsConflict(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeRoomUnavailable, ErrCodeInvalidTransition, ErrCodeUserExists:
		return true
	}
	return false
}

// IsAuthError agrupa los códigos de autenticación
func IsAuthError(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeTokenExpired,
		ErrCodeInvalidCredentials, ErrCodeInvalidSession, ErrCodeOAuthExchange, ErrCodeForbidden:
		return true
	}
	return false
}

var (
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrRoomNotFound        = errors.New("habitación no encontrada")
	ErrReservationNotFound = errors.New("reserva no encontrada")
	ErrRoomNotAvailable    = errors.New("habitación no disponible")
	ErrInvalidInput        = errors.New("datos inválidos")
)
