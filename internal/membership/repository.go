package membership

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lightlabcreation/gym-backend/internal/apperr"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const memberColumns = `id, user_id, admin_id, branch_id, full_name, email, phone, status`

func (r *repository) FindByID(ctx context.Context, id int) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM member WHERE id = $1`

	var m Member
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindActiveByUserID maps a login identity to its ACTIVE member profile.
func (r *repository) FindActiveByUserID(ctx context.Context, userID int) (*Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM member
		WHERE user_id = $1 AND status = 'ACTIVE'
	`

	var m Member
	if err := r.db.GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindActiveInTenant(ctx context.Context, memberID, adminID int) (*Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM member
		WHERE id = $1 AND admin_id = $2 AND status = 'ACTIVE'
	`

	var m Member
	if err := r.db.GetContext(ctx, &m, query, memberID, adminID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) ActiveAssignments(ctx context.Context, memberID int) ([]PlanAssignment, error) {
	query := `
		SELECT
			mpa.id,
			mpa.member_id,
			mpa.plan_id,
			mp.name AS plan_name,
			mp.sessions,
			mpa.membership_from,
			mpa.membership_to,
			mpa.status,
			mpa.created_at
		FROM member_plan_assignment mpa
		JOIN memberplan mp ON mp.id = mpa.plan_id
		WHERE mpa.member_id = $1 AND mpa.status = 'ACTIVE'
	`

	var assignments []PlanAssignment
	if err := r.db.SelectContext(ctx, &assignments, query, memberID); err != nil {
		return nil, err
	}
	return assignments, nil
}

// CountBookings counts every booking the member has ever made.
func (r *repository) CountBookings(ctx context.Context, memberID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM booking WHERE member_id = $1`, memberID)
	return count, err
}
