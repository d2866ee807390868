package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lightlabcreation/gym-backend/internal/apperr"
	"github.com/lightlabcreation/gym-backend/internal/attendance"
	"github.com/lightlabcreation/gym-backend/internal/membership"
	"github.com/lightlabcreation/gym-backend/internal/schedule"
)

// fakeStore is an in-memory stand-in for the member, schedule and booking
// tables. It enforces the same rules as the SQL repository.
type fakeStore struct {
	mu sync.Mutex

	members     map[int]*membership.Member
	assignments map[int][]membership.PlanAssignment
	schedules   map[int]*schedule.Schedule
	trainerOf   map[int]int
	bookings    []Booking
	attendance  []attendance.Attendance
	nextID      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		members:     map[int]*membership.Member{},
		assignments: map[int][]membership.PlanAssignment{},
		schedules:   map[int]*schedule.Schedule{},
		trainerOf:   map[int]int{},
	}
}

func (f *fakeStore) id() int {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) addMember(id, userID, adminID int) *membership.Member {
	email := fmt.Sprintf("member%d@example.com", id)
	branch := 1
	m := &membership.Member{
		ID:       id,
		UserID:   userID,
		AdminID:  adminID,
		BranchID: &branch,
		FullName: fmt.Sprintf("Member %d", id),
		Email:    &email,
		Status:   membership.StatusActive,
	}
	f.members[id] = m
	return m
}

func (f *fakeStore) addPlan(memberID, assignmentID, sessions int, to *time.Time) {
	f.assignments[memberID] = append(f.assignments[memberID], membership.PlanAssignment{
		ID:           assignmentID,
		MemberID:     memberID,
		Sessions:     sessions,
		MembershipTo: to,
		Status:       membership.StatusActive,
	})
}

func (f *fakeStore) addSchedule(id, capacity, adminID int) {
	f.schedules[id] = &schedule.Schedule{
		ID:        id,
		AdminID:   adminID,
		ClassName: fmt.Sprintf("Class %d", id),
		Date:      time.Date(2024, 6, 3, 7, 0, 0, 0, time.UTC),
		StartTime: "07:00",
		EndTime:   "08:00",
		Capacity:  capacity,
		Status:    schedule.StatusActive,
	}
	f.trainerOf[id] = adminID
}

// seedBookings records n past bookings for memberID on throwaway schedules.
func (f *fakeStore) seedBookings(memberID, n int) {
	for i := 0; i < n; i++ {
		f.bookings = append(f.bookings, Booking{ID: f.id(), MemberID: memberID, ScheduleID: 10000 + f.nextID})
	}
}

// membership.Repository

func (f *fakeStore) FindByID(_ context.Context, id int) (*membership.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.members[id]; ok {
		return m, nil
	}
	return nil, apperr.ErrMemberNotFound
}

func (f *fakeStore) FindActiveByUserID(_ context.Context, userID int) (*membership.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.UserID == userID && m.Status == membership.StatusActive {
			return m, nil
		}
	}
	return nil, apperr.ErrMemberNotFound
}

func (f *fakeStore) FindActiveInTenant(_ context.Context, memberID, adminID int) (*membership.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.members[memberID]; ok && m.AdminID == adminID && m.Status == membership.StatusActive {
		return m, nil
	}
	return nil, apperr.ErrMemberNotFound
}

func (f *fakeStore) ActiveAssignments(_ context.Context, memberID int) ([]membership.PlanAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]membership.PlanAssignment(nil), f.assignments[memberID]...), nil
}

func (f *fakeStore) CountBookings(_ context.Context, memberID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.bookings {
		if b.MemberID == memberID {
			n++
		}
	}
	return n, nil
}

// Schedules

func (f *fakeStore) GetByID(_ context.Context, id int) (*schedule.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.schedules[id]; ok {
		return s, nil
	}
	return nil, apperr.ErrScheduleNotFound
}

// Repository

func (f *fakeStore) exists(memberID, scheduleID int) bool {
	for _, b := range f.bookings {
		if b.MemberID == memberID && b.ScheduleID == scheduleID {
			return true
		}
	}
	return false
}

func (f *fakeStore) count(scheduleID int) int {
	n := 0
	for _, b := range f.bookings {
		if b.ScheduleID == scheduleID {
			n++
		}
	}
	return n
}

func (f *fakeStore) Exists(_ context.Context, memberID, scheduleID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exists(memberID, scheduleID), nil
}

func (f *fakeStore) CountForSchedule(_ context.Context, scheduleID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count(scheduleID), nil
}

func (f *fakeStore) Reserve(_ context.Context, r Reservation) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.schedules[r.ScheduleID]
	if !ok {
		return nil, apperr.ErrScheduleNotFound
	}
	if f.exists(r.MemberID, r.ScheduleID) {
		return nil, apperr.ErrAlreadyBooked
	}
	if f.count(r.ScheduleID) >= s.Capacity {
		return nil, apperr.ErrClassFull
	}

	b := Booking{ID: f.id(), MemberID: r.MemberID, ScheduleID: r.ScheduleID, CreatedAt: time.Now()}
	f.bookings = append(f.bookings, b)

	notes := fmt.Sprintf("Booked for class schedule ID: %d", r.ScheduleID)
	f.attendance = append(f.attendance, attendance.Attendance{
		ID:       f.id(),
		MemberID: r.MemberID,
		BranchID: r.BranchID,
		CheckIn:  time.Now(),
		Status:   attendance.StatusPresent,
		Mode:     attendance.ModeClassBooking,
		Notes:    &notes,
	})
	return &b, nil
}

func (f *fakeStore) Delete(_ context.Context, memberID, scheduleID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.bookings {
		if b.MemberID == memberID && b.ScheduleID == scheduleID {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return apperr.ErrBookingNotFound
}

func (f *fakeStore) ListBookable(_ context.Context, memberID *int, adminID int) ([]BookableSchedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var rows []BookableSchedule
	for id, s := range f.schedules {
		if f.trainerOf[id] != adminID {
			continue
		}
		row := BookableSchedule{
			ID:           s.ID,
			ClassName:    s.ClassName,
			Capacity:     s.Capacity,
			MembersCount: f.count(id),
			Time:         s.StartTime + " - " + s.EndTime,
		}
		if memberID != nil {
			for _, b := range f.bookings {
				if b.MemberID == *memberID && b.ScheduleID == id {
					bid := b.ID
					row.BookingID = &bid
				}
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	return rows, nil
}

func (f *fakeStore) ListByMember(_ context.Context, memberID int) ([]MemberBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []MemberBooking
	for _, b := range f.bookings {
		if b.MemberID == memberID {
			rows = append(rows, MemberBooking{Booking: b})
		}
	}
	return rows, nil
}
