package schedule

import (
	"time"

	"github.com/lightlabcreation/gym-backend/internal/idlist"
)

const (
	StatusActive = "Active"

	// DateLayout is how schedule dates are written to classschedule.date:
	// UTC with millisecond precision.
	DateLayout = "2006-01-02 15:04:05.000"
)

type Schedule struct {
	ID          int         `db:"id" json:"id"`
	AdminID     int         `db:"admin_id" json:"adminId"`
	ClassName   string      `db:"class_name" json:"className"`
	TrainerID   int         `db:"trainer_id" json:"trainerId"`
	TrainerName *string     `db:"trainer_name" json:"trainerName,omitempty"`
	Date        time.Time   `db:"date" json:"date"`
	Day         *string     `db:"day" json:"day"`
	StartTime   string      `db:"start_time" json:"startTime"`
	EndTime     string      `db:"end_time" json:"endTime"`
	Capacity    int         `db:"capacity" json:"capacity"`
	Status      string      `db:"status" json:"status"`
	Members     idlist.List `db:"members" json:"members"`
	Price       float64     `db:"price" json:"price"`
}

// Summary is the admin list view of a schedule.
type Summary struct {
	ID           int       `db:"id" json:"id"`
	ClassName    string    `db:"class_name" json:"className"`
	TrainerID    int       `db:"trainer_id" json:"trainerId"`
	TrainerName  *string   `db:"trainer_name" json:"trainerName"`
	Date         time.Time `db:"date" json:"date"`
	StartTime    string    `db:"start_time" json:"-"`
	EndTime      string    `db:"end_time" json:"-"`
	Time         string    `db:"-" json:"time"`
	Day          *string   `db:"day" json:"day"`
	Status       string    `db:"status" json:"status"`
	Capacity     int       `db:"capacity" json:"capacity"`
	MembersCount int       `db:"members_count" json:"membersCount"`
	Price        float64   `db:"price" json:"price"`
}

type ClassType struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Trainer struct {
	ID       int     `db:"id" json:"id"`
	FullName string  `db:"full_name" json:"fullName"`
	Email    string  `db:"email" json:"email"`
	Phone    *string `db:"phone" json:"phone"`
	BranchID *int    `db:"branch_id" json:"branchId"`
	Role     string  `db:"role" json:"role"`
}

type CreateScheduleRequest struct {
	AdminID   int         `json:"adminId"`
	ClassName string      `json:"className"`
	TrainerID int         `json:"trainerId"`
	Date      string      `json:"date"`
	Day       *string     `json:"day"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	Capacity  *int        `json:"capacity"`
	Status    string      `json:"status"`
	Members   idlist.List `json:"members"`
	Price     *float64    `json:"price"`
}

// UpdateScheduleRequest is a partial update; nil fields are left untouched.
type UpdateScheduleRequest struct {
	ClassName *string      `json:"className"`
	TrainerID *int         `json:"trainerId"`
	Date      *string      `json:"date"`
	Day       *string      `json:"day"`
	StartTime *string      `json:"startTime"`
	EndTime   *string      `json:"endTime"`
	Capacity  *int         `json:"capacity" validate:"omitempty,gte=0"`
	Status    *string      `json:"status"`
	Members   *idlist.List `json:"members"`
	Price     *float64     `json:"price"`
}

type CreateClassTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

// Change is one column assignment of a partial update.
type Change struct {
	Column string
	Value  interface{}
}
