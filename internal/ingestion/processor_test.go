package ingestion

import (
	"context"
	"testing"
	"time"

	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
)

type memEquipmentRepo struct {
	units map[int64]*domainEquipment.Equipment
}

func newMemEquipmentRepo(units ...*domainEquipment.Equipment) *memEquipmentRepo {
	r := &memEquipmentRepo{units: make(map[int64]*domainEquipment.Equipment)}
	for _, u := range units {
		r.units[u.ID] = u
	}
	return r
}

func (r *memEquipmentRepo) Create(ctx context.Context, e *domainEquipment.Equipment) error {
	r.units[e.ID] = e
	return nil
}

func (r *memEquipmentRepo) GetByID(ctx context.Context, id int64) (*domainEquipment.Equipment, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, domainEquipment.ErrEquipmentNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memEquipmentRepo) FindByCampAndName(ctx context.Context, campName, name string) ([]*domainEquipment.Equipment, error) {
	return nil, nil
}

func (r *memEquipmentRepo) List(ctx context.Context, filter *domainEquipment.Filter) ([]*domainEquipment.Equipment, int64, error) {
	return nil, 0, nil
}

func (r *memEquipmentRepo) Update(ctx context.Context, e *domainEquipment.Equipment) error {
	r.units[e.ID] = e
	return nil
}

func (r *memEquipmentRepo) UpdateStatus(ctx context.Context, id int64, status domainEquipment.Status) error {
	u, ok := r.units[id]
	if !ok {
		return domainEquipment.ErrEquipmentNotFound
	}
	u.Status = status
	return nil
}

func (r *memEquipmentRepo) UpdateOccupancy(ctx context.Context, id int64, start, end, nextMaintenance *time.Time) error {
	u, ok := r.units[id]
	if !ok {
		return domainEquipment.ErrEquipmentNotFound
	}
	u.StartDate = start
	u.EndDate = end
	u.NextMaintenanceDate = nextMaintenance
	return nil
}

func (r *memEquipmentRepo) Delete(ctx context.Context, id int64) error {
	delete(r.units, id)
	return nil
}

func mustDate(t *testing.T, value string) *time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return &d
}

func TestApply_PartialDateUpdateKeepsStoredWindow(t *testing.T) {
	repo := newMemEquipmentRepo(&domainEquipment.Equipment{
		ID:        7,
		Name:      "Excavator EX-200",
		CampName:  "North Ridge",
		Status:    domainEquipment.StatusAllocated,
		StartDate: mustDate(t, "2024-01-05"),
		EndDate:   mustDate(t, "2024-01-15"),
	})
	p := NewProcessor(repo, 1, 8)

	err := p.apply(&StatusUpdateMessage{
		EquipmentID:         7,
		Status:              "UnderMaintenance",
		NextMaintenanceDate: strPtr("2024-02-01"),
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	u := repo.units[7]
	if u.StartDate == nil || !u.StartDate.Equal(*mustDate(t, "2024-01-05")) {
		t.Errorf("start date changed: %v", u.StartDate)
	}
	if u.EndDate == nil || !u.EndDate.Equal(*mustDate(t, "2024-01-15")) {
		t.Errorf("end date changed: %v", u.EndDate)
	}
	if u.NextMaintenanceDate == nil || !u.NextMaintenanceDate.Equal(*mustDate(t, "2024-02-01")) {
		t.Errorf("next maintenance date not applied: %v", u.NextMaintenanceDate)
	}
	if u.Status != domainEquipment.StatusUnderMaintenance {
		t.Errorf("status not applied: %v", u.Status)
	}
}

func TestApply_FullWindowReplacesStoredWindow(t *testing.T) {
	repo := newMemEquipmentRepo(&domainEquipment.Equipment{
		ID:        7,
		Status:    domainEquipment.StatusReadyToUse,
		StartDate: mustDate(t, "2024-01-05"),
		EndDate:   mustDate(t, "2024-01-15"),
	})
	p := NewProcessor(repo, 1, 8)

	err := p.apply(&StatusUpdateMessage{
		EquipmentID: 7,
		Status:      "Allocated",
		StartDate:   strPtr("2024-03-01"),
		EndDate:     strPtr("2024-03-10"),
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	u := repo.units[7]
	if u.StartDate == nil || !u.StartDate.Equal(*mustDate(t, "2024-03-01")) {
		t.Errorf("start date not replaced: %v", u.StartDate)
	}
	if u.EndDate == nil || !u.EndDate.Equal(*mustDate(t, "2024-03-10")) {
		t.Errorf("end date not replaced: %v", u.EndDate)
	}
}

func TestApply_StatusOnlySkipsOccupancyWrite(t *testing.T) {
	repo := newMemEquipmentRepo(&domainEquipment.Equipment{
		ID:        7,
		Status:    domainEquipment.StatusAllocated,
		StartDate: mustDate(t, "2024-01-05"),
		EndDate:   mustDate(t, "2024-01-15"),
	})
	p := NewProcessor(repo, 1, 8)

	if err := p.apply(&StatusUpdateMessage{EquipmentID: 7, Status: "ReadyToUse"}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	u := repo.units[7]
	if u.StartDate == nil || u.EndDate == nil {
		t.Fatal("status-only update must not touch the occupancy window")
	}
	if p.Metrics().OccupancyChanges != 0 {
		t.Error("no occupancy write expected for a status-only update")
	}
}
