package shift

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lightlabcreation/gym-backend/internal/apperr"
)

const columns = `sh.id, sh.staff_id, u.full_name AS staff_name, sh.branch_id, sh.shift_date,
	sh.start_time, sh.end_time, sh.shift_type, sh.description, sh.status, sh.created_by_id, sh.created_at`

const fromShifts = `
	FROM shifts sh
	LEFT JOIN staff st ON st.id = sh.staff_id
	LEFT JOIN users u ON u.id = st.user_id
`

var updatable = map[string]bool{
	"staff_id":    true,
	"branch_id":   true,
	"shift_date":  true,
	"start_time":  true,
	"end_time":    true,
	"shift_type":  true,
	"description": true,
	"status":      true,
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Shift) (*Shift, error) {
	query := `
		INSERT INTO shifts (staff_id, branch_id, shift_date, start_time, end_time, shift_type, description, status, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		s.StaffID, s.BranchID, s.ShiftDate.Format(DateLayout), s.StartTime, s.EndTime,
		s.ShiftType, s.Description, s.Status, s.CreatedByID,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create shift for staff %d: %w", s.StaffID, err)
	}
	return s, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Shift, error) {
	query := `SELECT ` + columns + fromShifts + `WHERE sh.id = $1`

	var s Shift
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrShiftNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListByAdmin(ctx context.Context, adminID int) ([]Shift, error) {
	query := `SELECT ` + columns + fromShifts + `
		WHERE st.admin_id = $1
		ORDER BY sh.shift_date DESC, sh.start_time
	`

	shifts := []Shift{}
	if err := r.db.SelectContext(ctx, &shifts, query, adminID); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *repository) ListByStaff(ctx context.Context, staffID int) ([]Shift, error) {
	query := `SELECT ` + columns + fromShifts + `
		WHERE sh.staff_id = $1
		ORDER BY sh.shift_date DESC, sh.start_time
	`

	shifts := []Shift{}
	if err := r.db.SelectContext(ctx, &shifts, query, staffID); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *repository) Update(ctx context.Context, id int, changes []Change) error {
	if len(changes) == 0 {
		return nil
	}

	sets := make([]string, 0, len(changes))
	args := make([]interface{}, 0, len(changes)+1)
	for i, ch := range changes {
		if !updatable[ch.Column] {
			return fmt.Errorf("column %q is not updatable", ch.Column)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", ch.Column, i+1))
		args = append(args, ch.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE shifts SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrShiftNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrShiftNotFound
	}
	return nil
}
