package booking

import (
	"context"
	"errors"
	"time"

	"github.com/lightlabcreation/gym-backend/internal/apperr"
	"github.com/lightlabcreation/gym-backend/internal/logger"
	"github.com/lightlabcreation/gym-backend/internal/membership"
	"github.com/lightlabcreation/gym-backend/internal/metrics"
	"github.com/lightlabcreation/gym-backend/internal/schedule"
)

type Service interface {
	BookClass(ctx context.Context, userID, scheduleID int) (*Booking, error)
	ListBookableSchedules(ctx context.Context, memberID *int, adminID int) ([]BookableSchedule, error)
	CancelBooking(ctx context.Context, memberID, scheduleID int) error
	MemberBookings(ctx context.Context, memberID int) ([]MemberBooking, error)
}

// Schedules is the part of the schedule store booking reads from.
type Schedules interface {
	GetByID(ctx context.Context, id int) (*schedule.Schedule, error)
}

// Notifier sends booking emails. Delivery problems never fail a booking.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, name, className string, when time.Time) error
	SendBookingCancellation(ctx context.Context, to, name, className string, when time.Time) error
}

type service struct {
	repo      Repository
	members   membership.Repository
	schedules Schedules
	notifier  Notifier
	now       func() time.Time
}

// NewService wires the booking engine. notifier may be nil.
func NewService(repo Repository, members membership.Repository, schedules Schedules, notifier Notifier) Service {
	return &service{
		repo:      repo,
		members:   members,
		schedules: schedules,
		notifier:  notifier,
		now:       time.Now,
	}
}

func (s *service) BookClass(ctx context.Context, userID, scheduleID int) (*Booking, error) {
	b, err := s.bookClass(ctx, userID, scheduleID)
	metrics.RecordBooking(outcome(err))
	return b, err
}

func outcome(err error) string {
	if err == nil {
		return "booked"
	}
	if appErr, ok := apperr.As(err); ok {
		return string(appErr.Code)
	}
	return "error"
}

func (s *service) bookClass(ctx context.Context, userID, scheduleID int) (*Booking, error) {
	member, err := s.members.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.Exists(ctx, member.ID, scheduleID)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, apperr.ErrAlreadyBooked
	}

	sch, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	elig, err := s.eligibility(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	if err := elig.Err(); err != nil {
		return nil, err
	}

	count, err := s.repo.CountForSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if count >= sch.Capacity {
		return nil, apperr.ErrClassFull
	}

	b, err := s.repo.Reserve(ctx, Reservation{
		MemberID:   member.ID,
		BranchID:   member.BranchID,
		ScheduleID: scheduleID,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("class booked",
		"booking_id", b.ID,
		"member_id", member.ID,
		"schedule_id", scheduleID,
	)

	if s.notifier != nil && member.Email != nil {
		if err := s.notifier.SendBookingConfirmation(ctx, *member.Email, member.FullName, sch.ClassName, sch.Date); err != nil {
			logger.Warn("booking confirmation not queued", "booking_id", b.ID, "error", err)
		}
	}

	return b, nil
}

// eligibility loads the member's current plan and lifetime booking count.
func (s *service) eligibility(ctx context.Context, memberID int) (Eligibility, error) {
	assignments, err := s.members.ActiveAssignments(ctx, memberID)
	if err != nil {
		return Eligibility{}, err
	}

	plan := membership.Latest(assignments)
	if plan == nil {
		return Evaluate(nil, 0, s.now()), nil
	}

	booked, err := s.members.CountBookings(ctx, memberID)
	if err != nil {
		return Eligibility{}, err
	}
	return Evaluate(plan, booked, s.now()), nil
}

// ListBookableSchedules annotates the tenant's schedules for memberID.
// A member that is missing, inactive or from another tenant is ignored and
// the list is returned as an anonymous visitor would see it. Capacity is not
// part of IsBookable; a full class is only refused by BookClass.
func (s *service) ListBookableSchedules(ctx context.Context, memberID *int, adminID int) ([]BookableSchedule, error) {
	var member *membership.Member
	if memberID != nil {
		m, err := s.members.FindActiveInTenant(ctx, *memberID, adminID)
		switch {
		case err == nil:
			member = m
		case !errors.Is(err, apperr.ErrMemberNotFound):
			return nil, err
		}
	}

	var (
		expired   bool
		remaining *int
		viewer    *int
	)
	if member != nil {
		elig, err := s.eligibility(ctx, member.ID)
		if err != nil {
			return nil, err
		}
		expired = elig.Expired()
		remaining = elig.Remaining
		viewer = &member.ID
	}

	rows, err := s.repo.ListBookable(ctx, viewer, adminID)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		r := &rows[i]
		r.IsBooked = r.BookingID != nil
		r.SessionExpired = expired
		r.RemainingSessions = remaining
		r.IsBookable = !expired && !r.IsBooked
		if r.IsBooked {
			r.BookedMember = &BookedMember{
				ID:    member.UserID,
				Name:  member.FullName,
				Email: member.Email,
				Phone: member.Phone,
			}
		}
	}
	return rows, nil
}

// CancelBooking deletes the booking and leaves the attendance row written at
// booking time in place.
func (s *service) CancelBooking(ctx context.Context, memberID, scheduleID int) error {
	if err := s.repo.Delete(ctx, memberID, scheduleID); err != nil {
		return err
	}
	metrics.RecordBookingCancellation()

	logger.Info("booking cancelled", "member_id", memberID, "schedule_id", scheduleID)
	s.notifyCancelled(ctx, memberID, scheduleID)
	return nil
}

func (s *service) notifyCancelled(ctx context.Context, memberID, scheduleID int) {
	if s.notifier == nil {
		return
	}

	member, err := s.members.FindByID(ctx, memberID)
	if err != nil || member.Email == nil {
		return
	}
	sch, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return
	}

	if err := s.notifier.SendBookingCancellation(ctx, *member.Email, member.FullName, sch.ClassName, sch.Date); err != nil {
		logger.Warn("cancellation email not queued", "member_id", memberID, "error", err)
	}
}

func (s *service) MemberBookings(ctx context.Context, memberID int) ([]MemberBooking, error) {
	return s.repo.ListByMember(ctx, memberID)
}
