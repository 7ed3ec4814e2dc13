package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Валидация и интейк
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	CodeSpamDetected     ErrorCode = "SPAM_DETECTED"

	// Аутентификация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"

	// Заявки
	CodeSubmissionNotFound ErrorCode = "SUBMISSION_NOT_FOUND"
	CodeInvalidStatus      ErrorCode = "INVALID_STATUS"

	// Контент
	CodeItemNotFound ErrorCode = "ITEM_NOT_FOUND"
	CodePostNotFound ErrorCode = "POST_NOT_FOUND"

	// Системные ошибки
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
