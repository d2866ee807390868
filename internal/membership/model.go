package membership

import "time"

const (
	StatusActive = "ACTIVE"

	TrainerTypePersonal = "personal"
)

type Member struct {
	ID       int     `db:"id" json:"id"`
	UserID   int     `db:"user_id" json:"userId"`
	AdminID  int     `db:"admin_id" json:"adminId"`
	BranchID *int    `db:"branch_id" json:"branchId"`
	FullName string  `db:"full_name" json:"fullName"`
	Email    *string `db:"email" json:"email"`
	Phone    *string `db:"phone" json:"phone"`
	Status   string  `db:"status" json:"status"`
}

// PlanAssignment is a member's subscription to a plan, joined with the plan's
// session allowance. Sessions == 0 means unlimited.
type PlanAssignment struct {
	ID             int        `db:"id" json:"id"`
	MemberID       int        `db:"member_id" json:"memberId"`
	PlanID         int        `db:"plan_id" json:"planId"`
	PlanName       string     `db:"plan_name" json:"planName"`
	Sessions       int        `db:"sessions" json:"sessions"`
	MembershipFrom *time.Time `db:"membership_from" json:"membershipFrom"`
	MembershipTo   *time.Time `db:"membership_to" json:"membershipTo"`
	Status         string     `db:"status" json:"status"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

func (a PlanAssignment) Unlimited() bool {
	return a.Sessions == 0
}

// ExpiredAt reports whether the assignment's end date lies before now.
// An open-ended assignment never expires by date.
func (a PlanAssignment) ExpiredAt(now time.Time) bool {
	return a.MembershipTo != nil && a.MembershipTo.Before(now)
}

// Latest picks the current plan out of a member's assignments: the ACTIVE
// one created last. Assignment ids grow with creation order, so the highest
// id wins. It returns nil when nothing is active.
func Latest(assignments []PlanAssignment) *PlanAssignment {
	var current *PlanAssignment
	for i := range assignments {
		a := &assignments[i]
		if a.Status != StatusActive {
			continue
		}
		if current == nil || a.ID > current.ID {
			current = a
		}
	}
	return current
}
