package schedule

import "context"

type Repository interface {
	Create(ctx context.Context, s *Schedule) (*Schedule, error)
	GetByID(ctx context.Context, id int) (*Schedule, error)
	ListByAdmin(ctx context.Context, adminID int) ([]Summary, error)
	Update(ctx context.Context, id int, changes []Change) error
	DeleteWithBookings(ctx context.Context, id int) error

	CreateClassType(ctx context.Context, name string) (*ClassType, error)
	ListClassTypes(ctx context.Context) ([]ClassType, error)
	ListTrainers(ctx context.Context, adminID int) ([]Trainer, error)
}
