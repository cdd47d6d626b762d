package ingestion

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidateStatusUpdate_Valid(t *testing.T) {
	msg := &StatusUpdateMessage{
		EquipmentID: 42,
		Status:      "ReadyToUse",
		StartDate:   strPtr("2024-01-01"),
		EndDate:     strPtr("2024-01-10"),
	}
	if err := ValidateStatusUpdate(msg); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestValidateStatusUpdate_MissingEquipmentID(t *testing.T) {
	msg := &StatusUpdateMessage{Status: "ReadyToUse"}
	if err := ValidateStatusUpdate(msg); !errors.Is(err, ErrMissingEquipmentID) {
		t.Errorf("expected ErrMissingEquipmentID, got %v", err)
	}
}

func TestValidateStatusUpdate_UnknownStatus(t *testing.T) {
	msg := &StatusUpdateMessage{EquipmentID: 42, Status: "Broken"}
	if err := ValidateStatusUpdate(msg); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestValidateStatusUpdate_BadDate(t *testing.T) {
	msg := &StatusUpdateMessage{
		EquipmentID: 42,
		Status:      "UnderMaintenance",
		EndDate:     strPtr("10-01-2024"),
	}
	if err := ValidateStatusUpdate(msg); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestParseDate(t *testing.T) {
	if parseDate(nil) != nil {
		t.Error("nil input must yield nil")
	}
	if parseDate(strPtr("garbage")) != nil {
		t.Error("unparseable input must yield nil")
	}
	d := parseDate(strPtr("2024-01-05"))
	if d == nil || d.Format("2006-01-02") != "2024-01-05" {
		t.Error("expected parsed date 2024-01-05")
	}
}

func TestMetricsTracker(t *testing.T) {
	tracker := NewMetricsTracker()

	tracker.Update(func(m *FeedMetrics) {
		m.MessagesReceived++
		m.MessagesProcessed++
	})
	tracker.Update(func(m *FeedMetrics) {
		m.MessagesReceived++
		m.MessagesFailed++
	})

	snap := tracker.Snapshot()
	if snap.MessagesReceived != 2 || snap.MessagesProcessed != 1 || snap.MessagesFailed != 1 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}

	tracker.Reset()
	if snap = tracker.Snapshot(); snap.MessagesReceived != 0 {
		t.Error("reset must clear counters")
	}
}
