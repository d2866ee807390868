package attendance

import (
	"context"
	"time"

	"github.com/lightlabcreation/gym-backend/internal/metrics"
)

type Service interface {
	CheckIn(ctx context.Context, req CheckInRequest) (*Attendance, error)
	CheckOut(ctx context.Context, id int) (*Attendance, error)
	Get(ctx context.Context, id int) (*Attendance, error)
	ListByMember(ctx context.Context, memberID int) ([]Attendance, error)
	Daily(ctx context.Context, f DailyFilter) ([]Attendance, error)
	TodaySummary(ctx context.Context, adminID int) (*Summary, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) CheckIn(ctx context.Context, req CheckInRequest) (*Attendance, error) {
	a := &Attendance{
		MemberID: req.MemberID,
		BranchID: req.BranchID,
		Status:   StatusPresent,
		Mode:     req.Mode,
		Notes:    req.Notes,
	}
	if a.Mode == "" {
		a.Mode = ModeManual
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	metrics.RecordAttendance("check_in")
	return created, nil
}

func (s *service) CheckOut(ctx context.Context, id int) (*Attendance, error) {
	a, err := s.repo.CheckOut(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	metrics.RecordAttendance("check_out")
	return a, nil
}

func (s *service) Get(ctx context.Context, id int) (*Attendance, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByMember(ctx context.Context, memberID int) ([]Attendance, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) Daily(ctx context.Context, f DailyFilter) ([]Attendance, error) {
	if f.Date.IsZero() {
		f.Date = s.now()
	}
	return s.repo.Daily(ctx, f)
}

func (s *service) TodaySummary(ctx context.Context, adminID int) (*Summary, error) {
	return s.repo.Summary(ctx, adminID, s.now())
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
