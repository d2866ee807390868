package invoice

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

// FindPayment loads the payment with the member, branch, plan and gym
// details. The tax rate is read from the member's own user row.
func (r *repository) FindPayment(ctx context.Context, paymentID int) (*Record, error) {
	query := `
		SELECT
			p.id AS payment_id,
			p.amount,
			p.invoice_no,
			p.payment_date,
			p.payment_mode,
			m.id AS member_id,
			m.full_name AS member_name,
			m.email AS member_email,
			m.phone AS member_phone,
			m.address AS member_address,
			m.membership_from,
			m.membership_to,
			m.admin_id,
			m.discount AS member_discount,
			b.id AS branch_id,
			b.name AS branch_name,
			b.address AS branch_address,
			pl.id AS plan_id,
			pl.name AS plan_name,
			pl.price AS plan_price,
			pl.duration AS plan_duration,
			pl.validity_days AS plan_validity,
			u.full_name AS admin_name,
			u.gym_name AS admin_gym_name,
			u.gym_address AS admin_gym_address,
			u.gst_number AS admin_gst_number,
			u.phone AS admin_phone,
			u.email AS admin_email,
			s.gym_name AS settings_gym_name,
			mu.tax AS member_tax
		FROM payment p
		LEFT JOIN member m ON m.id = p.member_id
		LEFT JOIN branch b ON b.id = m.branch_id
		LEFT JOIN memberplan pl ON pl.id = p.plan_id
		LEFT JOIN users u ON u.id = m.admin_id
		LEFT JOIN users mu ON mu.id = m.user_id
		LEFT JOIN app_settings s ON s.admin_id = m.admin_id
		WHERE p.id = $1
	`

	var rec Record
	if err := r.db.GetContext(ctx, &rec, query, paymentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrPaymentNotFound
		}
		return nil, err
	}
	return &rec, nil
}
