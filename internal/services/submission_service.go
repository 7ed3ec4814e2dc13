package services

import (
	"context"
	"time"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
)

// SubmissionService - админские операции над заявками: списки,
// workflow статусов, удаление, счетчики для дашборда.
type SubmissionService struct {
	repo repositories.SubmissionRepository
}

func NewSubmissionService(repo repositories.SubmissionRepository) *SubmissionService {
	return &SubmissionService{repo: repo}
}

// List возвращает заявки новые-первыми, опционально по статусу.
// Неизвестный статус в фильтре не ошибка: просто пустой список,
// как и при прямом сравнении в запросе.
func (s *SubmissionService) List(ctx context.Context, statusFilter string) ([]dto.SubmissionSummary, error) {
	var (
		submissions []models.ContactSubmission
		err         error
	)

	if statusFilter != "" {
		submissions, err = s.repo.FindByStatus(models.SubmissionStatus(statusFilter))
	} else {
		submissions, err = s.repo.FindAll()
	}
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	summaries := make([]dto.SubmissionSummary, 0, len(submissions))
	for i := range submissions {
		summaries = append(summaries, dto.NewSubmissionSummary(&submissions[i]))
	}
	return summaries, nil
}

// SetStatus переводит заявку в целевой статус. Проверяется только
// членство в наборе статусов: любой статус достижим из любого,
// ограничений на направление переходов нет.
func (s *SubmissionService) SetStatus(ctx context.Context, id uint, status string) error {
	target := models.SubmissionStatus(status)
	if !target.IsValid() {
		return apperrors.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(id, target); err != nil {
		if apperrors.Is(err, repositories.ErrSubmissionNotFound) {
			return apperrors.ErrSubmissionNotFound
		}
		return apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "submission status updated", "submission_id", id, "status", status)
	return nil
}

func (s *SubmissionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrSubmissionNotFound) {
			return apperrors.ErrSubmissionNotFound
		}
		return apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "submission deleted", "submission_id", id)
	return nil
}

// Dashboard собирает счетчики по каждому статусу и полный список заявок
func (s *SubmissionService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	submissions, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Stats:       *stats,
		Submissions: submissions,
		GeneratedAt: time.Now(),
	}, nil
}

func (s *SubmissionService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	total, err := s.repo.CountAll()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	counts := make(map[models.SubmissionStatus]int64, len(models.AllSubmissionStatuses))
	for _, status := range models.AllSubmissionStatuses {
		count, err := s.repo.CountByStatus(status)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		counts[status] = count
	}

	return &dto.DashboardStats{
		Total:    total,
		Unread:   counts[models.SubmissionStatusUnread],
		Read:     counts[models.SubmissionStatusRead],
		Replied:  counts[models.SubmissionStatusReplied],
		Archived: counts[models.SubmissionStatusArchived],
	}, nil
}
