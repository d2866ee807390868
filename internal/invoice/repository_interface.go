package invoice

import "context"

type Repository interface {
	FindPayment(ctx context.Context, paymentID int) (*Record, error)
}
