package shift

import (
	"time"

	"github.com/lightlabcreation/gym-backend/internal/idlist"
)

const (
	StatusPending = "Pending"

	DateLayout = "2006-01-02"
)

type Shift struct {
	ID          int       `db:"id" json:"id"`
	StaffID     int       `db:"staff_id" json:"staffId"`
	StaffName   *string   `db:"staff_name" json:"staffName,omitempty"`
	BranchID    *int      `db:"branch_id" json:"branchId"`
	ShiftDate   time.Time `db:"shift_date" json:"shiftDate"`
	StartTime   string    `db:"start_time" json:"startTime"`
	EndTime     string    `db:"end_time" json:"endTime"`
	ShiftType   string    `db:"shift_type" json:"shiftType"`
	Description *string   `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
	CreatedByID *int      `db:"created_by_id" json:"createdById"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// CreateShiftBatchRequest creates one shift per staff id. staffIds may be a
// JSON array, a comma separated string or a single number.
type CreateShiftBatchRequest struct {
	StaffIDs    idlist.List `json:"staffIds" swaggertype:"array,string"`
	BranchID    *int        `json:"branchId"`
	ShiftDate   string      `json:"shiftDate" example:"2024-06-03"`
	StartTime   string      `json:"startTime" example:"06:00"`
	EndTime     string      `json:"endTime" example:"14:00"`
	ShiftType   string      `json:"shiftType" example:"Morning"`
	Description *string     `json:"description"`
	CreatedByID *int        `json:"-"`
}

type UpdateShiftRequest struct {
	StaffID     *int    `json:"staffId"`
	BranchID    *int    `json:"branchId"`
	ShiftDate   *string `json:"shiftDate"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	ShiftType   *string `json:"shiftType"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" example:"Approved"`
}

type Change struct {
	Column string
	Value  interface{}
}

type CreateShiftsResponse struct {
	Message string  `json:"message" example:"Shifts created successfully!"`
	Data    []Shift `json:"data"`
}
