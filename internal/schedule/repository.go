package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lightlabcreation/gym-backend/internal/apperr"
)

// updatable lists the classschedule columns a partial update may touch.
var updatable = map[string]bool{
	"class_name": true,
	"trainer_id": true,
	"date":       true,
	"day":        true,
	"start_time": true,
	"end_time":   true,
	"capacity":   true,
	"status":     true,
	"members":    true,
	"price":      true,
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Schedule) (*Schedule, error) {
	query := `
		INSERT INTO classschedule
			(admin_id, class_name, trainer_id, date, day, start_time, end_time, capacity, status, members, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &s.ID, query,
		s.AdminID, s.ClassName, s.TrainerID, s.Date.UTC().Format(DateLayout), s.Day,
		s.StartTime, s.EndTime, s.Capacity, s.Status, s.Members, s.Price,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Schedule, error) {
	query := `
		SELECT
			cs.id, cs.admin_id, cs.class_name, cs.trainer_id, u.full_name AS trainer_name,
			cs.date, cs.day, cs.start_time, cs.end_time, cs.capacity, cs.status, cs.members, cs.price
		FROM classschedule cs
		LEFT JOIN users u ON cs.trainer_id = u.id
		WHERE cs.id = $1
	`

	var s Schedule
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrScheduleNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByAdmin returns the schedules run by trainers of the tenant.
func (r *repository) ListByAdmin(ctx context.Context, adminID int) ([]Summary, error) {
	query := `
		SELECT
			cs.id, cs.class_name, cs.trainer_id, u.full_name AS trainer_name,
			cs.date, cs.start_time, cs.end_time, cs.day, cs.status, cs.capacity, cs.price,
			(SELECT COUNT(*) FROM booking bk WHERE bk.schedule_id = cs.id) AS members_count
		FROM classschedule cs
		LEFT JOIN users u ON cs.trainer_id = u.id
		WHERE u.admin_id = $1
		ORDER BY cs.id DESC
	`

	var rows []Summary
	if err := r.db.SelectContext(ctx, &rows, query, adminID); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Time = rows[i].StartTime + " - " + rows[i].EndTime
	}
	return rows, nil
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

	query := fmt.Sprintf("UPDATE classschedule SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrScheduleNotFound
	}
	return nil
}

// DeleteWithBookings removes the schedule and its bookings in one transaction.
func (r *repository) DeleteWithBookings(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM booking WHERE schedule_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM classschedule WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrScheduleNotFound
	}

	return tx.Commit()
}

func (r *repository) CreateClassType(ctx context.Context, name string) (*ClassType, error) {
	ct := ClassType{Name: name}
	if err := r.db.GetContext(ctx, &ct.ID, `INSERT INTO classtype (name) VALUES ($1) RETURNING id`, name); err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *repository) ListClassTypes(ctx context.Context) ([]ClassType, error) {
	var types []ClassType
	if err := r.db.SelectContext(ctx, &types, `SELECT id, name FROM classtype ORDER BY id DESC`); err != nil {
		return nil, err
	}
	return types, nil
}

// ListTrainers returns the tenant's trainers and personal trainers. Personal
// trainers already bound to an ACTIVE personal plan are hidden.
func (r *repository) ListTrainers(ctx context.Context, adminID int) ([]Trainer, error) {
	query := `
		SELECT u.id, u.full_name, u.email, u.phone, u.branch_id, u.role
		FROM users u
		WHERE u.role IN ('trainer', 'personal_trainer')
			AND u.admin_id = $1
			AND NOT EXISTS (
				SELECT 1
				FROM memberplan mp
				WHERE mp.trainer_id = u.id
					AND mp.trainer_type = 'personal'
					AND mp.status = 'ACTIVE'
			)
		ORDER BY u.id DESC
	`

	var trainers []Trainer
	if err := r.db.SelectContext(ctx, &trainers, query, adminID); err != nil {
		return nil, err
	}
	return trainers, nil
}
