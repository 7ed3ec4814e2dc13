package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio_backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAPI_RequiresSession(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	w := performJSON(router, http.MethodGet, "/api/admin/submissions", nil, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Мутация без сессии не доходит до хранилища
func TestAdminAPI_UnauthenticatedMutationWritesNothing(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	w := performJSON(router, http.MethodPatch, "/api/admin/submissions/1/status",
		map[string]string{"status": "read"}, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminPages_RedirectToLogin(t *testing.T) {
	router, _, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestAdminAPI_ForgedCookieRejected(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	w := performJSON(router, http.MethodGet, "/api/admin/submissions", nil,
		"portfolio_admin=forged-value")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSubmissions_FilterByStatus(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	cookie := loginAndGetCookie(t, router, mock)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status", "created_at", "updated_at"}).
		AddRow(2, "Jane", "jane@example.com", "Project", "Details", "read", now, now)
	mock.ExpectQuery(`SELECT \* FROM "contact_submissions" WHERE status = \$1 ORDER BY created_at DESC`).
		WithArgs("read").
		WillReturnRows(rows)

	w := performJSON(router, http.MethodGet, "/api/admin/submissions?status=read", nil, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"status":"read"`)
	assert.Contains(t, body, "jane@example.com")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Success(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	cookie := loginAndGetCookie(t, router, mock)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "contact_submissions" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("replied", sqlmock.AnyArg(), 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performJSON(router, http.MethodPatch, "/api/admin/submissions/5/status",
		map[string]string{"status": "replied"}, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	cookie := loginAndGetCookie(t, router, mock)

	w := performJSON(router, http.MethodPatch, "/api/admin/submissions/5/status",
		map[string]string{"status": "resolved"}, cookie)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATUS")
	// До хранилища запрос не дошел
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	cookie := loginAndGetCookie(t, router, mock)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "contact_submissions"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := performJSON(router, http.MethodPatch, "/api/admin/submissions/99/status",
		map[string]string{"status": "read"}, cookie)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SUBMISSION_NOT_FOUND")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Нечисловой id в пути эквивалентен несуществующей заявке
func TestUpdateStatus_NonNumericIDIsNotFound(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	cookie := loginAndGetCookie(t, router, mock)

	w := performJSON(router, http.MethodPatch, "/api/admin/submissions/abc/status",
		map[string]string{"status": "read"}, cookie)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubmission_UnknownID(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	cookie := loginAndGetCookie(t, router, mock)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "contact_submissions" WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := performJSON(router, http.MethodDelete, "/api/admin/submissions/99", nil, cookie)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SUBMISSION_NOT_FOUND")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboard_StatsAndSubmissions(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	cookie := loginAndGetCookie(t, router, mock)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contact_submissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	for _, count := range []int64{2, 1, 0, 0} { // unread, read, replied, archived
		mock.ExpectQuery(`SELECT count\(\*\) FROM "contact_submissions" WHERE status = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
	}

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status", "created_at", "updated_at"}).
		AddRow(3, "Newest", "new@example.com", "S", "M", "unread", now, now).
		AddRow(1, "Oldest", "old@example.com", "S", "M", "read", now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery(`SELECT \* FROM "contact_submissions" ORDER BY created_at DESC`).
		WillReturnRows(rows)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"total":3`)
	assert.Contains(t, body, `"unread":2`)
	assert.Contains(t, body, "new@example.com")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Сквозной сценарий: заявка с публичной формы видна в админском списке
func TestSubmitThenVisibleInAdminList(t *testing.T) {
	router, mock, cleanup := testutils.SetupTestApp(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contact_submissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := performJSON(router, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"subject": "Project",
		"message": "Details",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	cookie := loginAndGetCookie(t, router, mock)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status", "created_at", "updated_at"}).
		AddRow(1, "Jane", "jane@example.com", "Project", "Details", "unread", now, now)
	mock.ExpectQuery(`SELECT \* FROM "contact_submissions" ORDER BY created_at DESC`).
		WillReturnRows(rows)

	w = performJSON(router, http.MethodGet, "/api/admin/submissions", nil, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unread"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
