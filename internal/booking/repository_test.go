package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightlabcreation/gym-backend/internal/apperr"
	"github.com/lightlabcreation/gym-backend/internal/attendance"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewRepository(sqlxDB), mock
}

const (
	lockQuery   = "SELECT capacity FROM classschedule WHERE id = $1 FOR UPDATE"
	countQuery  = "SELECT COUNT(*) FROM booking WHERE schedule_id = $1"
	insertQuery = "INSERT INTO booking (member_id, schedule_id)"
	visitQuery  = "INSERT INTO memberattendance (member_id, branch_id, check_in, status, mode, notes, created_at)"
)

func expectLocked(mock sqlmock.Sqlmock, scheduleID, capacity int, booked bool, count int) {
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs(scheduleID).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(capacity))
	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs(3, scheduleID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(booked))
	if booked {
		return
	}
	mock.ExpectQuery(regexp.QuoteMeta(countQuery)).
		WithArgs(scheduleID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestReserve_Success(t *testing.T) {
	repo, mock := setupMock(t)
	now := time.Now()
	branch := 2
	notes := "Booked for class schedule ID: 7"

	expectLocked(mock, 7, 10, false, 4)
	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs(3, 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "schedule_id", "created_at"}).AddRow(55, 3, 7, now))
	mock.ExpectQuery(regexp.QuoteMeta(visitQuery)).
		WithArgs(3, &branch, attendance.StatusPresent, attendance.ModeClassBooking, &notes).
		WillReturnRows(sqlmock.NewRows([]string{"id", "check_in", "created_at"}).AddRow(90, now, now))
	mock.ExpectCommit()

	b, err := repo.Reserve(context.Background(), Reservation{MemberID: 3, BranchID: &branch, ScheduleID: 7})
	require.NoError(t, err)
	assert.Equal(t, 55, b.ID)
	assert.Equal(t, 7, b.ScheduleID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserve_ScheduleMissing(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}))
	mock.ExpectRollback()

	_, err := repo.Reserve(context.Background(), Reservation{MemberID: 3, ScheduleID: 7})
	assert.ErrorIs(t, err, apperr.ErrScheduleNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserve_AlreadyBookedInsideTx(t *testing.T) {
	repo, mock := setupMock(t)

	expectLocked(mock, 7, 10, true, 0)
	mock.ExpectRollback()

	_, err := repo.Reserve(context.Background(), Reservation{MemberID: 3, ScheduleID: 7})
	assert.ErrorIs(t, err, apperr.ErrAlreadyBooked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserve_ClassFull(t *testing.T) {
	repo, mock := setupMock(t)

	expectLocked(mock, 7, 10, false, 10)
	mock.ExpectRollback()

	_, err := repo.Reserve(context.Background(), Reservation{MemberID: 3, ScheduleID: 7})
	assert.ErrorIs(t, err, apperr.ErrClassFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserve_UniqueViolation(t *testing.T) {
	repo, mock := setupMock(t)

	expectLocked(mock, 7, 10, false, 1)
	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs(3, 7).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "booking_member_schedule_key"})
	mock.ExpectRollback()

	_, err := repo.Reserve(context.Background(), Reservation{MemberID: 3, ScheduleID: 7})
	assert.ErrorIs(t, err, apperr.ErrAlreadyBooked)
	assert.Equal(t, 400, apperr.HTTPStatus(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	t.Run("removes only the booking", func(t *testing.T) {
		repo, mock := setupMock(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM booking WHERE member_id = $1 AND schedule_id = $2")).
			WithArgs(3, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 3, 7))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no booking", func(t *testing.T) {
		repo, mock := setupMock(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM booking WHERE member_id = $1 AND schedule_id = $2")).
			WithArgs(3, 7).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 3, 7), apperr.ErrBookingNotFound)
	})
}

func TestListBookable(t *testing.T) {
	repo, mock := setupMock(t)
	date := time.Date(2024, 6, 3, 7, 0, 0, 0, time.UTC)
	memberID := 3

	cols := []string{"id", "class_name", "date", "day", "start_time", "end_time", "status", "capacity", "price", "trainer_name", "members_count", "booking_id"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE u.admin_id = $2")).
		WithArgs(&memberID, 1).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(8, "Spin", date, "Monday", "07:00", "08:00", "Active", 10, 0.0, "Coach", 2, nil).
			AddRow(7, "Yoga", date, "Monday", "09:00", "10:00", "Active", 10, 0.0, "Coach", 5, 41))

	rows, err := repo.ListBookable(context.Background(), &memberID, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "07:00 - 08:00", rows[0].Time)
	assert.Nil(t, rows[0].BookingID)
	require.NotNil(t, rows[1].BookingID)
	assert.Equal(t, 41, *rows[1].BookingID)
	require.NoError(t, mock.ExpectationsWereMet())
}
