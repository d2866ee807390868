package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lightlabcreation/gym-backend/internal/apperr"
	"github.com/lightlabcreation/gym-backend/internal/attendance"
	"github.com/lightlabcreation/gym-backend/internal/db"
)

const existsQuery = `SELECT EXISTS(SELECT 1 FROM booking WHERE member_id = $1 AND schedule_id = $2)`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Exists(ctx context.Context, memberID, scheduleID int) (bool, error) {
	return db.Exists(ctx, r.db, existsQuery, memberID, scheduleID)
}

func (r *repository) CountForSchedule(ctx context.Context, scheduleID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM booking WHERE schedule_id = $1`, scheduleID)
	return count, err
}

// Reserve locks the schedule row so concurrent bookings of the same class
// are serialized, then repeats the uniqueness and capacity checks before
// inserting. The unique index on (member_id, schedule_id) backs the
// uniqueness check.
func (r *repository) Reserve(ctx context.Context, res Reservation) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var capacity int
	err = tx.GetContext(ctx, &capacity, `SELECT capacity FROM classschedule WHERE id = $1 FOR UPDATE`, res.ScheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrScheduleNotFound
		}
		return nil, err
	}

	booked, err := db.Exists(ctx, tx, existsQuery, res.MemberID, res.ScheduleID)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, apperr.ErrAlreadyBooked
	}

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM booking WHERE schedule_id = $1`, res.ScheduleID); err != nil {
		return nil, err
	}
	if count >= capacity {
		return nil, apperr.ErrClassFull
	}

	var b Booking
	err = tx.GetContext(ctx, &b, `
		INSERT INTO booking (member_id, schedule_id)
		VALUES ($1, $2)
		RETURNING id, member_id, schedule_id, created_at
	`, res.MemberID, res.ScheduleID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apperr.Wrap(apperr.ErrAlreadyBooked, err)
		}
		return nil, err
	}

	notes := fmt.Sprintf("Booked for class schedule ID: %d", res.ScheduleID)
	visit := &attendance.Attendance{
		MemberID: res.MemberID,
		BranchID: res.BranchID,
		Status:   attendance.StatusPresent,
		Mode:     attendance.ModeClassBooking,
		Notes:    &notes,
	}
	if err := attendance.Insert(ctx, tx, visit); err != nil {
		return nil, fmt.Errorf("record class attendance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes the booking only. Attendance written at booking time stays.
func (r *repository) Delete(ctx context.Context, memberID, scheduleID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM booking WHERE member_id = $1 AND schedule_id = $2`, memberID, scheduleID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrBookingNotFound
	}
	return nil
}

// ListBookable lists the schedules run by the tenant's trainers with the
// member's booking id, if any. A nil memberID matches no booking.
func (r *repository) ListBookable(ctx context.Context, memberID *int, adminID int) ([]BookableSchedule, error) {
	query := `
		SELECT
			cs.id,
			cs.class_name,
			cs.date,
			cs.day,
			cs.start_time,
			cs.end_time,
			cs.status,
			cs.capacity,
			cs.price,
			u.full_name AS trainer_name,
			(SELECT COUNT(*) FROM booking b2 WHERE b2.schedule_id = cs.id) AS members_count,
			(SELECT MAX(b.id) FROM booking b WHERE b.schedule_id = cs.id AND b.member_id = $1) AS booking_id
		FROM classschedule cs
		LEFT JOIN users u ON cs.trainer_id = u.id
		WHERE u.admin_id = $2
		ORDER BY cs.id DESC
	`

	var rows []BookableSchedule
	if err := r.db.SelectContext(ctx, &rows, query, memberID, adminID); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Time = rows[i].StartTime + " - " + rows[i].EndTime
	}
	return rows, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]MemberBooking, error) {
	query := `
		SELECT
			b.id, b.member_id, b.schedule_id, b.created_at,
			cs.class_name, cs.date, cs.day, cs.start_time, cs.end_time,
			u.full_name AS trainer_name
		FROM booking b
		LEFT JOIN classschedule cs ON b.schedule_id = cs.id
		LEFT JOIN users u ON cs.trainer_id = u.id
		WHERE b.member_id = $1
		ORDER BY b.id DESC
	`

	var rows []MemberBooking
	if err := r.db.SelectContext(ctx, &rows, query, memberID); err != nil {
		return nil, err
	}
	return rows, nil
}
