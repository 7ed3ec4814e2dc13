package models

type SubmissionStatus string

const (
	SubmissionStatusUnread   SubmissionStatus = "unread"
	SubmissionStatusRead     SubmissionStatus = "read"
	SubmissionStatusReplied  SubmissionStatus = "replied"
	SubmissionStatusArchived SubmissionStatus = "archived"
)

// AllSubmissionStatuses перечисляет допустимые статусы заявки.
var AllSubmissionStatuses = []SubmissionStatus{
	SubmissionStatusUnread,
	SubmissionStatusRead,
	SubmissionStatusReplied,
	SubmissionStatusArchived,
}

// IsValid проверяет членство в фиксированном наборе статусов.
// Переходы между статусами не ограничены: админ может выставить любой
// статус из набора напрямую.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusUnread, SubmissionStatusRead, SubmissionStatusReplied, SubmissionStatusArchived:
		return true
	}
	return false
}
