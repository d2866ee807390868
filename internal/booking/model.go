package booking

import "time"

type Booking struct {
	ID         int       `db:"id" json:"id"`
	MemberID   int       `db:"member_id" json:"memberId"`
	ScheduleID int       `db:"schedule_id" json:"scheduleId"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// Reservation is what the booking transaction needs to know about the member.
type Reservation struct {
	MemberID   int
	BranchID   *int
	ScheduleID int
}

type BookedMember struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// BookableSchedule is a schedule annotated with the viewing member's
// booking state. RemainingSessions is nil for unlimited plans and when no
// member is considered.
type BookableSchedule struct {
	ID           int       `db:"id" json:"id"`
	ClassName    string    `db:"class_name" json:"className"`
	Date         time.Time `db:"date" json:"date"`
	Day          *string   `db:"day" json:"day"`
	StartTime    string    `db:"start_time" json:"-"`
	EndTime      string    `db:"end_time" json:"-"`
	Time         string    `db:"-" json:"time"`
	TrainerName  *string   `db:"trainer_name" json:"trainer"`
	Status       string    `db:"status" json:"status"`
	Capacity     int       `db:"capacity" json:"capacity"`
	MembersCount int       `db:"members_count" json:"membersCount"`
	Price        float64   `db:"price" json:"price"`
	BookingID    *int      `db:"booking_id" json:"bookingId"`

	IsBooked          bool          `db:"-" json:"isBooked"`
	IsBookable        bool          `db:"-" json:"isBookable"`
	SessionExpired    bool          `db:"-" json:"sessionExpired"`
	RemainingSessions *int          `db:"-" json:"remainingSessions"`
	BookedMember      *BookedMember `db:"-" json:"bookedMember"`
}

type MemberBooking struct {
	Booking
	ClassName   *string    `db:"class_name" json:"className"`
	Date        *time.Time `db:"date" json:"date"`
	Day         *string    `db:"day" json:"day"`
	StartTime   *string    `db:"start_time" json:"startTime"`
	EndTime     *string    `db:"end_time" json:"endTime"`
	TrainerName *string    `db:"trainer_name" json:"trainerName"`
}

type CancelBookingResponse struct {
	Message string `json:"message" example:"Booking cancelled successfully"`
}
