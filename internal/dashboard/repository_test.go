package dashboard

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewRepository(sqlxDB), mock
}

var testWindow = window(time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC))

func TestFindUser(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, admin_id, role FROM users WHERE id = $1")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "admin_id", "role"}).AddRow(4, 1, "housekeeping"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, admin_id, role FROM users WHERE id = $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "admin_id", "role"}))

	u, err := repo.FindUser(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 1, *u.AdminID)

	u, err = repo.FindUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestCounts(t *testing.T) {
	repo, mock := setupMock(t)

	cols := []string{"today_shifts", "tasks_completed", "tasks_total", "pending_maintenance",
		"attendance_present", "attendance_total", "high_completed", "high_pending"}
	mock.ExpectQuery(regexp.QuoteMeta("AS today_shifts")).
		WithArgs(1, "2024-06-05", "2024-06-03").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(2, 3, 5, 4, 10, 12, 1, 2))

	c, err := repo.Counts(context.Background(), 1, testWindow)
	require.NoError(t, err)
	assert.Equal(t, Counts{
		TodayShifts:        2,
		TasksCompleted:     3,
		TasksTotal:         5,
		PendingMaintenance: 4,
		AttendancePresent:  10,
		AttendanceTotal:    12,
		HighCompleted:      1,
		HighPending:        2,
	}, *c)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskGraph(t *testing.T) {
	repo, mock := setupMock(t)
	day := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY t.due_date")).
		WithArgs(1, "2024-05-29").
		WillReturnRows(sqlmock.NewRows([]string{"day", "completed"}).AddRow(day, 3))

	rows, err := repo.TaskGraph(context.Background(), 1, testWindow)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Count)
}

func TestWeeklyRoster_Empty(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("sh.shift_date >= $2")).
		WithArgs(1, "2024-06-03").
		WillReturnRows(sqlmock.NewRows([]string{"shift_date", "start_time", "end_time", "branch_id", "status"}))

	rows, err := repo.WeeklyRoster(context.Background(), 1, testWindow)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
