package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения.
// Message — единственное, что уходит клиенту; Err остается в логах.
type AppError struct {
	Code     ErrorCode
	Message  string
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Err:      err,
		HTTPCode: e.HTTPCode,
	}
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки.
// Сообщения для ошибок аутентификации намеренно одинаковые:
// клиент не должен отличать "email не найден" от "пароль не подошел".
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Incorrect email or password", http.StatusBadRequest)
	ErrRoleMismatch       = New(CodeRoleMismatch, "Account does not have this role", http.StatusBadRequest)
	ErrUnauthorized       = New(CodeUnauthorized, "User not authenticated", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid token", http.StatusForbidden)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)

	// Пользователи
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusBadRequest)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "User already exists", http.StatusBadRequest)

	// Компании
	ErrCompanyNotFound        = New(CodeCompanyNotFound, "Company not found", http.StatusBadRequest)
	ErrCompanyMissingOnUpdate = New(CodeCompanyNotFound, "Company not found.", http.StatusNotFound)
	ErrCompanyAlreadyExists   = New(CodeCompanyAlreadyExists, "Company already exists", http.StatusBadRequest)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Функции-помощники для создания стандартных ошибок

func ValidationError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Something went wrong. Please try again later.", http.StatusInternalServerError)
}

func UploadError(err error) *AppError {
	return Wrap(err, CodeUploadFailed, "Something went wrong. Please try again later.", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}
