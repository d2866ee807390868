package dashboard

import "context"

type Repository interface {
	FindUser(ctx context.Context, userID int) (*User, error)
	Counts(ctx context.Context, adminID int, w Window) (*Counts, error)
	WeeklyRoster(ctx context.Context, adminID int, w Window) ([]RosterEntry, error)
	TaskGraph(ctx context.Context, adminID int, w Window) ([]TaskDay, error)
}
