package booking

import "context"

type Repository interface {
	Exists(ctx context.Context, memberID, scheduleID int) (bool, error)
	CountForSchedule(ctx context.Context, scheduleID int) (int, error)
	// Reserve books the seat and records class attendance atomically.
	Reserve(ctx context.Context, r Reservation) (*Booking, error)
	Delete(ctx context.Context, memberID, scheduleID int) error
	ListBookable(ctx context.Context, memberID *int, adminID int) ([]BookableSchedule, error)
	ListByMember(ctx context.Context, memberID int) ([]MemberBooking, error)
}
