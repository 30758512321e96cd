package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeRoleMismatch       ErrorCode = "ROLE_MISMATCH"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodeCompanyNotFound ErrorCode = "COMPANY_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists   ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeCompanyAlreadyExists ErrorCode = "COMPANY_ALREADY_EXISTS"

	// Системные ошибки
	CodeUploadFailed  ErrorCode = "UPLOAD_FAILED"
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
