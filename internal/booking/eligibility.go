package booking

import (
	"time"

	"github.com/lightlabcreation/gym-backend/internal/apperr"
	"github.com/lightlabcreation/gym-backend/internal/membership"
)

// Eligibility is a member's plan state at a point in time.
type Eligibility struct {
	Plan                *membership.PlanAssignment
	BookedSessions      int
	SessionLimitReached bool
	DateExpired         bool
	// Remaining is nil for unlimited plans.
	Remaining *int
}

// Evaluate checks a member's current plan against the bookings already made.
// bookedSessions counts every booking of the member, not only those made
// under plan. A nil plan means the member has no active plan.
func Evaluate(plan *membership.PlanAssignment, bookedSessions int, now time.Time) Eligibility {
	e := Eligibility{Plan: plan, BookedSessions: bookedSessions}
	if plan == nil {
		zero := 0
		e.Remaining = &zero
		return e
	}

	e.SessionLimitReached = !plan.Unlimited() && bookedSessions >= plan.Sessions
	e.DateExpired = plan.ExpiredAt(now)

	if !plan.Unlimited() {
		left := plan.Sessions - bookedSessions
		if left < 0 {
			left = 0
		}
		e.Remaining = &left
	}
	return e
}

// Expired reports whether a new booking would be refused.
func (e Eligibility) Expired() bool {
	return e.Plan == nil || e.SessionLimitReached || e.DateExpired
}

// Err is the error a booking attempt fails with, or nil. The session limit
// takes precedence over the end date.
func (e Eligibility) Err() error {
	switch {
	case e.Plan == nil:
		return apperr.ErrNoActivePlan
	case e.SessionLimitReached:
		return apperr.SessionLimitReached(e.BookedSessions, e.Plan.Sessions)
	case e.DateExpired:
		return apperr.ErrPlanExpired
	default:
		return nil
	}
}
