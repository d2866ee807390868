package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lightlabcreation/gym-backend/internal/apperr"
)

const columns = `a.id, a.member_id, m.full_name AS member_name, a.branch_id, a.check_in, a.check_out,
	a.status, a.mode, a.notes, a.created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Insert writes an attendance row with check_in set by the database clock.
// It takes a QueryerContext so callers can run it inside their own
// transaction.
func Insert(ctx context.Context, q sqlx.QueryerContext, a *Attendance) error {
	query := `
		INSERT INTO memberattendance (member_id, branch_id, check_in, status, mode, notes, created_at)
		VALUES ($1, $2, NOW(), $3, $4, $5, NOW())
		RETURNING id, check_in, created_at
	`

	row := q.QueryRowxContext(ctx, query, a.MemberID, a.BranchID, a.Status, a.Mode, a.Notes)
	return row.Scan(&a.ID, &a.CheckIn, &a.CreatedAt)
}

func (r *repository) Create(ctx context.Context, a *Attendance) (*Attendance, error) {
	if err := Insert(ctx, r.db, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Attendance, error) {
	query := `
		SELECT ` + columns + `
		FROM memberattendance a
		LEFT JOIN member m ON m.id = a.member_id
		WHERE a.id = $1
	`

	var a Attendance
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &a, nil
}

// CheckOut stamps check_out on an open record. A record that is already
// closed is reported as AlreadyCheckedOut.
func (r *repository) CheckOut(ctx context.Context, id int, at time.Time) (*Attendance, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE memberattendance SET check_out = $1 WHERE id = $2 AND check_out IS NULL`, at, id)
	if err != nil {
		return nil, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperr.ErrAlreadyCheckedOut
	}
	return a, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Attendance, error) {
	query := `
		SELECT ` + columns + `
		FROM memberattendance a
		LEFT JOIN member m ON m.id = a.member_id
		WHERE a.member_id = $1
		ORDER BY a.check_in DESC
	`

	var rows []Attendance
	if err := r.db.SelectContext(ctx, &rows, query, memberID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Daily(ctx context.Context, f DailyFilter) ([]Attendance, error) {
	query := `
		SELECT ` + columns + `
		FROM memberattendance a
		JOIN member m ON m.id = a.member_id
		WHERE m.admin_id = $1
			AND a.check_in::date = $2::date
			AND ($3 = '' OR m.full_name ILIKE '%' || $3 || '%')
			AND ($4 = '' OR a.status = $4)
		ORDER BY a.check_in DESC
	`

	var rows []Attendance
	err := r.db.SelectContext(ctx, &rows, query, f.AdminID, f.Date.Format("2006-01-02"), f.Search, f.Status)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Summary(ctx context.Context, adminID int, day time.Time) (*Summary, error) {
	query := `
		SELECT
			COUNT(*) AS present,
			COUNT(*) FILTER (WHERE a.check_out IS NULL) AS active,
			COUNT(*) FILTER (WHERE a.check_out IS NOT NULL) AS completed
		FROM memberattendance a
		JOIN member m ON m.id = a.member_id
		WHERE m.admin_id = $1 AND a.check_in::date = $2::date
	`

	s := Summary{Date: day.Format("2006-01-02")}
	if err := r.db.GetContext(ctx, &s, query, adminID, s.Date); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM memberattendance WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrAttendanceNotFound
	}
	return nil
}
