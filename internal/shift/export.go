package shift

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const rosterSheet = "Roster"

var rosterHeaders = []string{"Shift ID", "Staff ID", "Staff", "Date", "Start", "End", "Type", "Status", "Description"}

// WriteRoster writes shifts to w as an xlsx workbook with one row per shift.
func WriteRoster(w io.Writer, shifts []Shift) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		return err
	}

	for i, header := range rosterHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(rosterSheet, cell, header); err != nil {
			return err
		}
	}

	for i, s := range shifts {
		row := i + 2
		values := []interface{}{
			s.ID,
			s.StaffID,
			deref(s.StaffName),
			s.ShiftDate.Format(DateLayout),
			s.StartTime,
			s.EndTime,
			s.ShiftType,
			s.Status,
			deref(s.Description),
		}
		if err := f.SetSheetRow(rosterSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(rosterSheet, "C", "C", 24); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
