package attendance

import "time"

const (
	StatusPresent = "Present"

	ModeManual       = "Manual"
	ModeClassBooking = "Class Booking"
)

type Attendance struct {
	ID         int        `db:"id" json:"id"`
	MemberID   int        `db:"member_id" json:"memberId"`
	MemberName *string    `db:"member_name" json:"memberName,omitempty"`
	BranchID   *int       `db:"branch_id" json:"branchId"`
	CheckIn    time.Time  `db:"check_in" json:"checkIn"`
	CheckOut   *time.Time `db:"check_out" json:"checkOut"`
	Status     string     `db:"status" json:"status"`
	Mode       string     `db:"mode" json:"mode"`
	Notes      *string    `db:"notes" json:"notes"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}

type CheckInRequest struct {
	MemberID int     `json:"memberId" validate:"required,gt=0"`
	BranchID *int    `json:"branchId"`
	Mode     string  `json:"mode"`
	Notes    *string `json:"notes"`
}

type DailyFilter struct {
	AdminID int
	Date    time.Time
	Search  string
	Status  string
}

// Summary counts today's check-ins. Active members are still inside,
// completed ones have checked out.
type Summary struct {
	Date      string `db:"-" json:"date"`
	Present   int    `db:"present" json:"present"`
	Active    int    `db:"active" json:"active"`
	Completed int    `db:"completed" json:"completed"`
}
