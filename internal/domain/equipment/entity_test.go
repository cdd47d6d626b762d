package equipment

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func TestIsAvailable_StatusGates(t *testing.T) {
	start, end := date("2024-01-01"), date("2024-01-10")

	for _, status := range []Status{StatusUnderMaintenance, StatusAllocated} {
		e := &Equipment{Status: status}
		if e.IsAvailable(start, end) {
			t.Errorf("status %s must never be available", status)
		}
	}

	// Dates never rescue a non-ready unit.
	e := &Equipment{
		Status:    StatusAllocated,
		StartDate: datePtr("2030-01-01"),
		EndDate:   datePtr("2030-01-10"),
	}
	if e.IsAvailable(start, end) {
		t.Error("allocated unit with distant window must not be available")
	}
}

func TestIsAvailable_NoOwnDates(t *testing.T) {
	e := &Equipment{Status: StatusReadyToUse}
	if !e.IsAvailable(date("2024-01-01"), date("2024-01-10")) {
		t.Error("ready unit without own dates must be available")
	}
}

func TestIsAvailable_SingleDateTreatedAsUnconstrained(t *testing.T) {
	onlyStart := &Equipment{
		Status:    StatusReadyToUse,
		StartDate: datePtr("2024-01-05"),
	}
	onlyEnd := &Equipment{
		Status:  StatusReadyToUse,
		EndDate: datePtr("2024-01-15"),
	}

	start, end := date("2024-01-01"), date("2024-01-31")
	if !onlyStart.IsAvailable(start, end) {
		t.Error("unit with only start date must be treated as unconstrained")
	}
	if !onlyEnd.IsAvailable(start, end) {
		t.Error("unit with only end date must be treated as unconstrained")
	}
}

func TestIsAvailable_OverlapExcludes(t *testing.T) {
	// Unit occupied 2024-01-05 through 2024-01-15.
	e := &Equipment{
		Status:    StatusReadyToUse,
		StartDate: datePtr("2024-01-05"),
		EndDate:   datePtr("2024-01-15"),
	}

	// Requested window overlaps the tail of the occupancy.
	if e.IsAvailable(date("2024-01-10"), date("2024-01-20")) {
		t.Error("overlapping window must exclude the unit")
	}

	// Later window clears the occupancy entirely.
	if !e.IsAvailable(date("2024-02-01"), date("2024-02-05")) {
		t.Error("non-overlapping window must leave the unit available")
	}

	// Closed intervals: touching endpoints still overlap.
	if e.IsAvailable(date("2024-01-15"), date("2024-01-20")) {
		t.Error("request starting on the occupancy end date still overlaps")
	}
	if e.IsAvailable(date("2024-01-01"), date("2024-01-05")) {
		t.Error("request ending on the occupancy start date still overlaps")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusReadyToUse, StatusUnderMaintenance, StatusAllocated} {
		if !ValidStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ValidStatus(Status("Broken")) {
		t.Error("unknown status must be invalid")
	}
	if ValidStatus(Status("readytouse")) {
		t.Error("status values are case sensitive")
	}
}
