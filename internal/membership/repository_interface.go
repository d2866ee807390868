package membership

import "context"

type Repository interface {
	FindByID(ctx context.Context, id int) (*Member, error)
	FindActiveByUserID(ctx context.Context, userID int) (*Member, error)
	FindActiveInTenant(ctx context.Context, memberID, adminID int) (*Member, error)
	ActiveAssignments(ctx context.Context, memberID int) ([]PlanAssignment, error)
	CountBookings(ctx context.Context, memberID int) (int, error)
}
