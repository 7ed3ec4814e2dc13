package services

import (
	"sort"
	"time"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
)

// fakeSubmissionRepo - хранилище в памяти для сервисных тестов.
// ID выдаются монотонно, как это делает настоящая база.
type fakeSubmissionRepo struct {
	nextID      uint
	submissions map[uint]*models.ContactSubmission
	createErr   error
	updateErr   error
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{
		nextID:      1,
		submissions: make(map[uint]*models.ContactSubmission),
	}
}

func (f *fakeSubmissionRepo) Create(submission *models.ContactSubmission) error {
	if f.createErr != nil {
		return f.createErr
	}
	submission.ID = f.nextID
	f.nextID++
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}
	submission.UpdatedAt = submission.CreatedAt
	stored := *submission
	f.submissions[submission.ID] = &stored
	return nil
}

func (f *fakeSubmissionRepo) FindByID(id uint) (*models.ContactSubmission, error) {
	submission, ok := f.submissions[id]
	if !ok {
		return nil, repositories.ErrSubmissionNotFound
	}
	return submission, nil
}

func (f *fakeSubmissionRepo) FindAll() ([]models.ContactSubmission, error) {
	return f.sorted(func(*models.ContactSubmission) bool { return true }), nil
}

func (f *fakeSubmissionRepo) FindByStatus(status models.SubmissionStatus) ([]models.ContactSubmission, error) {
	return f.sorted(func(s *models.ContactSubmission) bool { return s.Status == status }), nil
}

func (f *fakeSubmissionRepo) UpdateStatus(id uint, status models.SubmissionStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	submission, ok := f.submissions[id]
	if !ok {
		return repositories.ErrSubmissionNotFound
	}
	submission.Status = status
	submission.UpdatedAt = time.Now()
	return nil
}

func (f *fakeSubmissionRepo) Delete(id uint) error {
	if _, ok := f.submissions[id]; !ok {
		return repositories.ErrSubmissionNotFound
	}
	delete(f.submissions, id)
	return nil
}

func (f *fakeSubmissionRepo) CountAll() (int64, error) {
	return int64(len(f.submissions)), nil
}

func (f *fakeSubmissionRepo) CountByStatus(status models.SubmissionStatus) (int64, error) {
	var count int64
	for _, s := range f.submissions {
		if s.Status == status {
			count++
		}
	}
	return count, nil
}

// sorted возвращает заявки новые-первыми, как ORDER BY created_at DESC
func (f *fakeSubmissionRepo) sorted(match func(*models.ContactSubmission) bool) []models.ContactSubmission {
	var result []models.ContactSubmission
	for _, s := range f.submissions {
		if match(s) {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// fakeAdminRepo - админы в памяти
type fakeAdminRepo struct {
	nextID uint
	admins map[uint]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		nextID: 1,
		admins: make(map[uint]*models.Admin),
	}
}

func (f *fakeAdminRepo) FindByID(id uint) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, repositories.ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepo) FindByEmail(email string) (*models.Admin, error) {
	for _, admin := range f.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

func (f *fakeAdminRepo) Create(admin *models.Admin) error {
	admin.ID = f.nextID
	f.nextID++
	stored := *admin
	f.admins[admin.ID] = &stored
	return nil
}

func (f *fakeAdminRepo) CountAll() (int64, error) {
	return int64(len(f.admins)), nil
}

// fakeNotifier фиксирует уведомления и может имитировать сбой SMTP
type fakeNotifier struct {
	notified []uint
	err      error
}

func (f *fakeNotifier) NotifyNewSubmission(submission *models.ContactSubmission) error {
	f.notified = append(f.notified, submission.ID)
	return f.err
}
