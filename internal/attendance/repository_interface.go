package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Attendance) (*Attendance, error)
	GetByID(ctx context.Context, id int) (*Attendance, error)
	CheckOut(ctx context.Context, id int, at time.Time) (*Attendance, error)
	ListByMember(ctx context.Context, memberID int) ([]Attendance, error)
	Daily(ctx context.Context, f DailyFilter) ([]Attendance, error)
	Summary(ctx context.Context, adminID int, day time.Time) (*Summary, error)
	Delete(ctx context.Context, id int) error
}
