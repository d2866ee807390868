package dashboard

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// FindUser returns nil without an error when the user does not exist.
func (r *repository) FindUser(ctx context.Context, userID int) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `SELECT id, admin_id, role FROM users WHERE id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Counts runs every scalar figure of the dashboard in one round trip.
// $2 is today, $3 the start of the week.
func (r *repository) Counts(ctx context.Context, adminID int, w Window) (*Counts, error) {
	query := `
		SELECT
			(SELECT COUNT(DISTINCT sh.id)
				FROM shifts sh
				JOIN staff st ON st.id = sh.staff_id
				JOIN users u ON u.id = st.user_id
				WHERE u.admin_id = $1 AND u.role = 'housekeeping' AND sh.shift_date = $2
			) AS today_shifts,
			(SELECT COUNT(*) FILTER (WHERE t.status = 'Completed')
				FROM tasks t
				JOIN staff st ON st.id = t.assigned_to
				JOIN users u ON u.id = st.user_id
				WHERE u.admin_id = $1 AND u.role = 'housekeeping' AND t.due_date BETWEEN $3 AND $2
			) AS tasks_completed,
			(SELECT COUNT(*)
				FROM tasks t
				JOIN staff st ON st.id = t.assigned_to
				JOIN users u ON u.id = st.user_id
				WHERE u.admin_id = $1 AND u.role = 'housekeeping' AND t.due_date BETWEEN $3 AND $2
			) AS tasks_total,
			(SELECT COUNT(*)
				FROM tasks t
				JOIN staff st ON st.id = t.assigned_to
				JOIN users u ON u.id = st.user_id
				WHERE u.admin_id = $1 AND u.role = 'housekeeping' AND t.status = 'Pending'
			) AS pending_maintenance,
			(SELECT COUNT(*) FILTER (WHERE a.status = 'Present')
				FROM memberattendance a
				JOIN member m ON m.id = a.member_id
				WHERE m.admin_id = $1 AND a.check_in::date BETWEEN $3 AND $2
			) AS attendance_present,
			(SELECT COUNT(*)
				FROM memberattendance a
				JOIN member m ON m.id = a.member_id
				WHERE m.admin_id = $1 AND a.check_in::date BETWEEN $3 AND $2
			) AS attendance_total,
			(SELECT COUNT(*) FILTER (WHERE t.priority = 'High' AND t.status = 'Completed')
				FROM tasks t
				JOIN staff st ON st.id = t.assigned_to
				JOIN users u ON u.id = st.user_id
				WHERE u.admin_id = $1 AND u.role = 'housekeeping'
			) AS high_completed,
			(SELECT COUNT(*) FILTER (WHERE t.priority = 'High' AND t.status = 'Pending')
				FROM tasks t
				JOIN staff st ON st.id = t.assigned_to
				JOIN users u ON u.id = st.user_id
				WHERE u.admin_id = $1 AND u.role = 'housekeeping'
			) AS high_pending
	`

	var c Counts
	if err := r.db.GetContext(ctx, &c, query, adminID, day(w.Today), day(w.WeekStart)); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) WeeklyRoster(ctx context.Context, adminID int, w Window) ([]RosterEntry, error) {
	query := `
		SELECT DISTINCT sh.shift_date, sh.start_time, sh.end_time, sh.branch_id, sh.status
		FROM shifts sh
		JOIN staff st ON st.id = sh.staff_id
		JOIN users u ON u.id = st.user_id
		WHERE u.admin_id = $1 AND u.role = 'housekeeping' AND sh.shift_date >= $2
		ORDER BY sh.shift_date ASC
	`

	rows := []RosterEntry{}
	if err := r.db.SelectContext(ctx, &rows, query, adminID, day(w.WeekStart)); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) TaskGraph(ctx context.Context, adminID int, w Window) ([]TaskDay, error) {
	query := `
		SELECT t.due_date AS day, COUNT(*) AS completed
		FROM tasks t
		JOIN staff st ON st.id = t.assigned_to
		JOIN users u ON u.id = st.user_id
		WHERE u.admin_id = $1 AND u.role = 'housekeeping'
			AND t.status = 'Completed'
			AND t.due_date >= $2
		GROUP BY t.due_date
		ORDER BY t.due_date
	`

	rows := []TaskDay{}
	if err := r.db.SelectContext(ctx, &rows, query, adminID, day(w.GraphFrom)); err != nil {
		return nil, err
	}
	return rows, nil
}

func day(t time.Time) string {
	return t.Format("2006-01-02")
}
