package services

import (
	"context"
	"strings"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/validator"
)

// ContactService - intake контактной формы. Проверки идут строго по
// порядку: honeypot, обязательные поля, форма email, нормализация,
// запись. Любой отказ означает ноль созданных записей.
type ContactService struct {
	repo     repositories.SubmissionRepository
	notifier email.Notifier
}

func NewContactService(repo repositories.SubmissionRepository, notifier email.Notifier) *ContactService {
	return &ContactService{repo: repo, notifier: notifier}
}

var requiredContactFields = []string{"name", "email", "subject", "message"}

func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest) (*models.ContactSubmission, error) {
	// Honeypot: живой пользователь скрытое поле не заполняет
	if strings.TrimSpace(req.Website) != "" {
		logger.CtxWarn(ctx, "contact submission flagged as spam")
		return nil, apperrors.ErrSpamDetected
	}

	values := map[string]string{
		"name":    strings.TrimSpace(req.Name),
		"email":   strings.TrimSpace(req.Email),
		"subject": strings.TrimSpace(req.Subject),
		"message": strings.TrimSpace(req.Message),
	}

	missing := make(map[string]string)
	for _, field := range requiredContactFields {
		if values[field] == "" {
			missing[field] = "This field is required"
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.ValidationError(missing)
	}

	normalizedEmail := strings.ToLower(values["email"])
	if !validator.ValidEmail(normalizedEmail) {
		return nil, apperrors.ErrInvalidEmail
	}

	submission := &models.ContactSubmission{
		Name:        values["name"],
		Email:       normalizedEmail,
		Phone:       optionalField(req.Phone),
		Company:     optionalField(req.Company),
		Budget:      optionalField(req.Budget),
		ProjectType: optionalField(req.ProjectType),
		Subject:     values["subject"],
		Message:     values["message"],
		Status:      models.SubmissionStatusUnread,
	}

	if err := s.repo.Create(submission); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "contact submission created", "submission_id", submission.ID)

	// Уведомление best-effort: заявка уже сохранена, ошибку только логируем
	if err := s.notifier.NotifyNewSubmission(submission); err != nil {
		logger.CtxWithError(ctx, "failed to send submission notification", err,
			"submission_id", submission.ID)
	}

	return submission, nil
}

// optionalField: пустое после trim значение хранится как NULL
func optionalField(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
