package shift

import "context"

type Repository interface {
	Create(ctx context.Context, s *Shift) (*Shift, error)
	GetByID(ctx context.Context, id int) (*Shift, error)
	ListByAdmin(ctx context.Context, adminID int) ([]Shift, error)
	ListByStaff(ctx context.Context, staffID int) ([]Shift, error)
	Update(ctx context.Context, id int, changes []Change) error
	Delete(ctx context.Context, id int) error
}
