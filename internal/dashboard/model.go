package dashboard

import "time"

const RoleHousekeeping = "housekeeping"

type User struct {
	ID      int    `db:"id"`
	AdminID *int   `db:"admin_id"`
	Role    string `db:"role"`
}

// Window is the reporting period: from the start of the week (Monday) to
// the end of today.
type Window struct {
	Today     time.Time
	WeekStart time.Time
	GraphFrom time.Time
}

type Counts struct {
	TodayShifts        int `db:"today_shifts" json:"todayShifts"`
	TasksCompleted     int `db:"tasks_completed" json:"tasksCompleted"`
	TasksTotal         int `db:"tasks_total" json:"tasksTotal"`
	PendingMaintenance int `db:"pending_maintenance" json:"pendingMaintenance"`
	AttendancePresent  int `db:"attendance_present" json:"attendancePresent"`
	AttendanceTotal    int `db:"attendance_total" json:"attendanceTotal"`
	HighCompleted      int `db:"high_completed" json:"-"`
	HighPending        int `db:"high_pending" json:"-"`
}

type RosterEntry struct {
	Date   time.Time `db:"shift_date" json:"date"`
	Start  string    `db:"start_time" json:"start"`
	End    string    `db:"end_time" json:"end"`
	Branch *int      `db:"branch_id" json:"branch"`
	Status string    `db:"status" json:"status"`
}

type TaskDay struct {
	Day   time.Time `db:"day" json:"day"`
	Count int       `db:"completed" json:"count"`
}

type MaintenanceStats struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type Housekeeping struct {
	Counts
	WeeklyRoster     []RosterEntry    `json:"weeklyRoster"`
	TaskGraph        []TaskDay        `json:"taskGraph"`
	MaintenanceStats MaintenanceStats `json:"maintenanceStats"`
}
