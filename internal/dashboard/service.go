package dashboard

import (
	"context"
	"time"

	"github.com/jinzhu/now"

	"github.com/lightlabcreation/gym-backend/internal/apperr"
)

type Service interface {
	Housekeeping(ctx context.Context, userID int) (*Housekeeping, error)
}

type service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, clock: time.Now}
}

var weekConfig = &now.Config{WeekStartDay: time.Monday}

// window builds the reporting period around t. Weeks start on Monday and
// the task graph covers the seven days before today.
func window(t time.Time) Window {
	today := weekConfig.With(t).BeginningOfDay()
	return Window{
		Today:     today,
		WeekStart: weekConfig.With(t).BeginningOfWeek(),
		GraphFrom: today.AddDate(0, 0, -7),
	}
}

// Housekeeping is available to housekeeping users only. Figures cover the
// housekeeping staff of the user's tenant.
func (s *service) Housekeeping(ctx context.Context, userID int) (*Housekeeping, error) {
	user, err := s.repo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != RoleHousekeeping || user.AdminID == nil {
		return nil, apperr.Unauthorized("Unauthorized: Not a housekeeping user")
	}
	adminID := *user.AdminID

	w := window(s.clock())

	counts, err := s.repo.Counts(ctx, adminID, w)
	if err != nil {
		return nil, err
	}
	roster, err := s.repo.WeeklyRoster(ctx, adminID, w)
	if err != nil {
		return nil, err
	}
	graph, err := s.repo.TaskGraph(ctx, adminID, w)
	if err != nil {
		return nil, err
	}

	return &Housekeeping{
		Counts:       *counts,
		WeeklyRoster: roster,
		TaskGraph:    graph,
		MaintenanceStats: MaintenanceStats{
			Completed: counts.HighCompleted,
			Pending:   counts.HighPending,
		},
	}, nil
}
