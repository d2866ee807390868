package shift

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/lightlabcreation/gym-backend/internal/apperr"
	"github.com/lightlabcreation/gym-backend/internal/logger"
	"github.com/lightlabcreation/gym-backend/internal/metrics"
)

type Service interface {
	CreateShiftBatch(ctx context.Context, req CreateShiftBatchRequest) ([]Shift, error)
	ListShifts(ctx context.Context, adminID int) ([]Shift, error)
	GetShift(ctx context.Context, id int) (*Shift, error)
	ListByStaff(ctx context.Context, staffID int) ([]Shift, error)
	UpdateShift(ctx context.Context, id int, req UpdateShiftRequest) (*Shift, error)
	UpdateShiftStatus(ctx context.Context, id int, status string) (*Shift, error)
	DeleteShift(ctx context.Context, id int) error
	ExportRoster(ctx context.Context, adminID int, w io.Writer) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func parseShiftDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, apperr.Validation("invalid shiftDate: " + s)
}

// CreateShiftBatch inserts one shift per staff id in request order. The
// batch is not atomic: when an insert fails the shifts created before it
// stay and are returned with the error.
func (s *service) CreateShiftBatch(ctx context.Context, req CreateShiftBatchRequest) ([]Shift, error) {
	if len(req.StaffIDs) == 0 || strings.TrimSpace(req.ShiftDate) == "" ||
		req.StartTime == "" || req.EndTime == "" || req.ShiftType == "" {
		return nil, apperr.Validation("Please fill all required fields")
	}

	staffIDs, err := req.StaffIDs.Ints()
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	date, err := parseShiftDate(req.ShiftDate)
	if err != nil {
		return nil, err
	}

	created := make([]Shift, 0, len(staffIDs))
	defer func() { metrics.RecordShiftsCreated(len(created)) }()

	for _, staffID := range staffIDs {
		sh, err := s.repo.Create(ctx, &Shift{
			StaffID:     staffID,
			BranchID:    req.BranchID,
			ShiftDate:   date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			ShiftType:   req.ShiftType,
			Description: req.Description,
			Status:      StatusPending,
			CreatedByID: req.CreatedByID,
		})
		if err != nil {
			logger.Warn("shift batch stopped",
				"created", len(created),
				"requested", len(staffIDs),
				"error", err,
			)
			return created, err
		}
		created = append(created, *sh)
	}

	logger.Info("shifts created", "count", len(created), "shift_date", req.ShiftDate)
	return created, nil
}

func (s *service) ListShifts(ctx context.Context, adminID int) ([]Shift, error) {
	if adminID <= 0 {
		return nil, apperr.Validation("adminId is required")
	}
	return s.repo.ListByAdmin(ctx, adminID)
}

func (s *service) GetShift(ctx context.Context, id int) (*Shift, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByStaff(ctx context.Context, staffID int) ([]Shift, error) {
	return s.repo.ListByStaff(ctx, staffID)
}

func (s *service) UpdateShift(ctx context.Context, id int, req UpdateShiftRequest) (*Shift, error) {
	var changes []Change
	set := func(column string, value interface{}) {
		changes = append(changes, Change{Column: column, Value: value})
	}

	if req.StaffID != nil {
		set("staff_id", *req.StaffID)
	}
	if req.BranchID != nil {
		set("branch_id", *req.BranchID)
	}
	if req.ShiftDate != nil {
		date, err := parseShiftDate(*req.ShiftDate)
		if err != nil {
			return nil, err
		}
		set("shift_date", date.Format(DateLayout))
	}
	if req.StartTime != nil {
		set("start_time", *req.StartTime)
	}
	if req.EndTime != nil {
		set("end_time", *req.EndTime)
	}
	if req.ShiftType != nil {
		set("shift_type", *req.ShiftType)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.Status != nil {
		set("status", *req.Status)
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// UpdateShiftStatus approves or rejects a shift.
func (s *service) UpdateShiftStatus(ctx context.Context, id int, status string) (*Shift, error) {
	if strings.TrimSpace(status) == "" {
		return nil, apperr.Validation("Status required")
	}
	return s.UpdateShift(ctx, id, UpdateShiftRequest{Status: &status})
}

func (s *service) DeleteShift(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ExportRoster(ctx context.Context, adminID int, w io.Writer) error {
	shifts, err := s.ListShifts(ctx, adminID)
	if err != nil {
		return err
	}
	return WriteRoster(w, shifts)
}
