package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/lightlabcreation/gym-backend/internal/apperr"
	"github.com/lightlabcreation/gym-backend/internal/idlist"
)

type Service interface {
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*Schedule, error)
	ListSchedules(ctx context.Context, adminID int) ([]Summary, error)
	GetSchedule(ctx context.Context, id int) (*Schedule, error)
	UpdateSchedule(ctx context.Context, id int, req UpdateScheduleRequest) (*Schedule, error)
	DeleteSchedule(ctx context.Context, id int) error

	CreateClassType(ctx context.Context, name string) (*ClassType, error)
	ListClassTypes(ctx context.Context) ([]ClassType, error)
	ListTrainers(ctx context.Context, adminID int) ([]Trainer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts the date shapes clients send and returns the instant in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.Validation("invalid date: " + s)
}

// FormatDate renders t the way classschedule.date stores it.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func (s *service) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*Schedule, error) {
	switch {
	case req.AdminID == 0:
		return nil, apperr.Validation("Admin is required")
	case strings.TrimSpace(req.ClassName) == "":
		return nil, apperr.Validation("Class name is required")
	case req.TrainerID == 0:
		return nil, apperr.Validation("Trainer is required")
	case strings.TrimSpace(req.Date) == "":
		return nil, apperr.Validation("Date is required")
	case req.StartTime == "" || req.EndTime == "":
		return nil, apperr.Validation("Start & End time required")
	case req.Capacity == nil || *req.Capacity <= 0:
		return nil, apperr.Validation("Capacity is required")
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	sch := &Schedule{
		AdminID:   req.AdminID,
		ClassName: req.ClassName,
		TrainerID: req.TrainerID,
		Date:      date,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Capacity:  *req.Capacity,
		Status:    req.Status,
		Members:   req.Members,
	}
	if sch.Status == "" {
		sch.Status = StatusActive
	}
	if sch.Members == nil {
		sch.Members = idlist.List{}
	}
	if req.Price != nil {
		sch.Price = *req.Price
	}

	return s.repo.Create(ctx, sch)
}

func (s *service) ListSchedules(ctx context.Context, adminID int) ([]Summary, error) {
	return s.repo.ListByAdmin(ctx, adminID)
}

func (s *service) GetSchedule(ctx context.Context, id int) (*Schedule, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateSchedule applies the non-nil fields of req and returns the merged
// schedule. A request with no fields set writes nothing.
func (s *service) UpdateSchedule(ctx context.Context, id int, req UpdateScheduleRequest) (*Schedule, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var changes []Change
	set := func(column string, value interface{}) {
		changes = append(changes, Change{Column: column, Value: value})
	}

	if req.ClassName != nil {
		current.ClassName = *req.ClassName
		set("class_name", *req.ClassName)
	}
	if req.TrainerID != nil {
		current.TrainerID = *req.TrainerID
		set("trainer_id", *req.TrainerID)
	}
	if req.Date != nil {
		date, err := ParseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		current.Date = date
		set("date", FormatDate(date))
	}
	if req.Day != nil {
		current.Day = req.Day
		set("day", *req.Day)
	}
	if req.StartTime != nil {
		current.StartTime = *req.StartTime
		set("start_time", *req.StartTime)
	}
	if req.EndTime != nil {
		current.EndTime = *req.EndTime
		set("end_time", *req.EndTime)
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, apperr.Validation("Capacity must not be negative")
		}
		current.Capacity = *req.Capacity
		set("capacity", *req.Capacity)
	}
	if req.Status != nil {
		current.Status = *req.Status
		set("status", *req.Status)
	}
	if req.Members != nil {
		current.Members = *req.Members
		set("members", *req.Members)
	}
	if req.Price != nil {
		current.Price = *req.Price
		set("price", *req.Price)
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *service) DeleteSchedule(ctx context.Context, id int) error {
	return s.repo.DeleteWithBookings(ctx, id)
}

func (s *service) CreateClassType(ctx context.Context, name string) (*ClassType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("Class type name is required")
	}
	return s.repo.CreateClassType(ctx, name)
}

func (s *service) ListClassTypes(ctx context.Context) ([]ClassType, error) {
	return s.repo.ListClassTypes(ctx)
}

func (s *service) ListTrainers(ctx context.Context, adminID int) ([]Trainer, error) {
	if adminID <= 0 {
		return nil, apperr.Validation("adminId is required")
	}
	return s.repo.ListTrainers(ctx, adminID)
}
