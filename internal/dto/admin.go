package dto

import (
	"time"

	"portfolio_backend/internal/models"
)

// LoginRequest - форма логина админ-панели
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// StatusUpdateRequest - смена статуса заявки.
// Членство статуса в допустимом наборе проверяет сервис, чтобы
// классифицировать ошибку как INVALID_STATUS.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// SubmissionSummary - заявка в списке админки
type SubmissionSummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Subject     string  `json:"subject"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ProjectType *string `json:"project_type"`
	Budget      *string `json:"budget"`
}

// NewSubmissionSummary переводит модель в элемент списка
func NewSubmissionSummary(s *models.ContactSubmission) SubmissionSummary {
	return SubmissionSummary{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		Subject:     s.Subject,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt.Format("2006-01-02 15:04"),
		ProjectType: s.ProjectType,
		Budget:      s.Budget,
	}
}

// DashboardStats - счетчики по статусам для дашборда
type DashboardStats struct {
	Total    int64 `json:"total"`
	Unread   int64 `json:"unread"`
	Read     int64 `json:"read"`
	Replied  int64 `json:"replied"`
	Archived int64 `json:"archived"`
}

// DashboardResponse - полный payload дашборда
type DashboardResponse struct {
	Stats       DashboardStats      `json:"stats"`
	Submissions []SubmissionSummary `json:"submissions"`
	GeneratedAt time.Time           `json:"generated_at"`
}
