package demand

import (
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
	domainWorkshop "fleet-equipment-tracker/internal/domain/workshop"
	"fleet-equipment-tracker/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// In-memory repositories mirroring the store's matching semantics:
// camp resolution is case-insensitive exact, equipment filtering is
// case-insensitive substring on both camp and name.

type memWorkshopRepo struct {
	workshops []*domainWorkshop.Workshop
}

func (r *memWorkshopRepo) Create(_ context.Context, w *domainWorkshop.Workshop) error {
	r.workshops = append(r.workshops, w)
	return nil
}

func (r *memWorkshopRepo) GetByID(_ context.Context, id string) (*domainWorkshop.Workshop, error) {
	for _, w := range r.workshops {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, domainWorkshop.ErrWorkshopNotFound
}

func (r *memWorkshopRepo) FindByCampName(_ context.Context, campName string) (*domainWorkshop.Workshop, error) {
	for _, w := range r.workshops {
		if strings.EqualFold(w.CampName, campName) {
			return w, nil
		}
	}
	return nil, domainWorkshop.ErrCampNotFound
}

func (r *memWorkshopRepo) List(_ context.Context, _ *domainWorkshop.Filter) ([]*domainWorkshop.Workshop, error) {
	return r.workshops, nil
}

func (r *memWorkshopRepo) Update(_ context.Context, _ *domainWorkshop.Workshop) error {
	return nil
}

func (r *memWorkshopRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type memEquipmentRepo struct {
	units []*domainEquipment.Equipment
}

func (r *memEquipmentRepo) Create(_ context.Context, e *domainEquipment.Equipment) error {
	r.units = append(r.units, e)
	return nil
}

func (r *memEquipmentRepo) GetByID(_ context.Context, id int64) (*domainEquipment.Equipment, error) {
	for _, e := range r.units {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainEquipment.ErrEquipmentNotFound
}

func (r *memEquipmentRepo) FindByCampAndName(_ context.Context, campName, name string) ([]*domainEquipment.Equipment, error) {
	var out []*domainEquipment.Equipment
	for _, e := range r.units {
		if campName != "" && !strings.Contains(strings.ToLower(e.CampName), strings.ToLower(campName)) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(name)) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memEquipmentRepo) List(_ context.Context, _ *domainEquipment.Filter) ([]*domainEquipment.Equipment, int64, error) {
	return r.units, int64(len(r.units)), nil
}

func (r *memEquipmentRepo) Update(_ context.Context, _ *domainEquipment.Equipment) error {
	return nil
}

func (r *memEquipmentRepo) UpdateStatus(_ context.Context, id int64, status domainEquipment.Status) error {
	for _, e := range r.units {
		if e.ID == id {
			e.Status = status
			return nil
		}
	}
	return domainEquipment.ErrEquipmentNotFound
}

func (r *memEquipmentRepo) UpdateOccupancy(_ context.Context, id int64, start, end, next *time.Time) error {
	for _, e := range r.units {
		if e.ID == id {
			e.StartDate = start
			e.EndDate = end
			e.NextMaintenanceDate = next
			return nil
		}
	}
	return domainEquipment.ErrEquipmentNotFound
}

func (r *memEquipmentRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func fl(v float64) *float64 { return &v }

func ws(id, camp string, lat, lon *float64) *domainWorkshop.Workshop {
	return &domainWorkshop.Workshop{ID: id, CampName: camp, LocationLat: lat, LocationLon: lon}
}

func unit(id int64, name, camp string, status domainEquipment.Status) *domainEquipment.Equipment {
	return &domainEquipment.Equipment{ID: id, Name: name, CampName: camp, Status: status}
}

func occupiedUnit(id int64, name, camp string, start, end string) *domainEquipment.Equipment {
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	return &domainEquipment.Equipment{
		ID: id, Name: name, CampName: camp,
		Status:    domainEquipment.StatusReadyToUse,
		StartDate: &s, EndDate: &e,
	}
}

func checkRequest(camp string, quantity int) *CheckDemandRequest {
	return &CheckDemandRequest{
		CampName:      camp,
		EquipmentName: "Excavator",
		StartDate:     "2024-01-01",
		EndDate:       "2024-01-10",
		Quantity:      quantity,
	}
}

func TestCheckDemand_HomeCampSatisfies(t *testing.T) {
	ctx := context.Background()

	workshopRepo := &memWorkshopRepo{}
	equipmentRepo := &memEquipmentRepo{}

	workshopRepo.Create(ctx, ws("WS_001", "Camp1", fl(10.0), fl(20.0)))
	workshopRepo.Create(ctx, ws("WS_002", "Camp2", fl(10.05), fl(20.0)))
	for i := int64(1); i <= 5; i++ {
		equipmentRepo.Create(ctx, unit(i, "Excavator", "Camp1", domainEquipment.StatusReadyToUse))
	}

	svc := NewService(workshopRepo, equipmentRepo, 15.0)

	result, err := svc.CheckDemand(ctx, checkRequest("Camp1", 3))
	if err != nil {
		t.Fatalf("CheckDemand failed: %v", err)
	}

	if result.Availability.Available != 5 {
		t.Errorf("expected 5 available, got %d", result.Availability.Available)
	}
	if !result.Availability.MeetsRequirement {
		t.Error("expected requirement to be met")
	}
	if result.UI.ShowMap {
		t.Error("map hint must be off when demand is met")
	}
	if len(result.Alternatives) != 0 {
		t.Errorf("expected no alternatives, got %d", len(result.Alternatives))
	}
	if result.UI.Center.Lat == nil || *result.UI.Center.Lat != 10.0 {
		t.Error("home coordinates must be included even when demand is met")
	}
}

func TestCheckDemand_CampNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memWorkshopRepo{}, &memEquipmentRepo{}, 15.0)

	_, err := svc.CheckDemand(ctx, checkRequest("Nowhere", 1))
	if err == nil {
		t.Fatal("expected error for unknown camp")
	}
	if !errors.Is(err, domainWorkshop.ErrCampNotFound) {
		t.Errorf("expected ErrCampNotFound, got %v", err)
	}
}

func TestCheckDemand_CampLookupIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()

	workshopRepo := &memWorkshopRepo{}
	equipmentRepo := &memEquipmentRepo{}
	workshopRepo.Create(ctx, ws("WS_001", "Camp1", fl(10.0), fl(20.0)))
	equipmentRepo.Create(ctx, unit(1, "Excavator", "Camp1", domainEquipment.StatusReadyToUse))

	svc := NewService(workshopRepo, equipmentRepo, 15.0)

	result, err := svc.CheckDemand(ctx, checkRequest("CAMP1", 1))
	if err != nil {
		t.Fatalf("CheckDemand failed: %v", err)
	}
	if !result.Availability.MeetsRequirement {
		t.Error("expected case-insensitive camp resolution to succeed")
	}
}

func TestCheckDemand_AlternativesRankedByDistance(t *testing.T) {
	ctx := context.Background()

	workshopRepo := &memWorkshopRepo{}
	equipmentRepo := &memEquipmentRepo{}

	workshopRepo.Create(ctx, ws("WS_001", "Camp1", fl(10.0), fl(20.0)))
	// ~5.6 km north.
	workshopRepo.Create(ctx, ws("WS_002", "Camp2", fl(10.05), fl(20.0)))
	// ~0.1 km north.
	workshopRepo.Create(ctx, ws("WS_003", "Camp3", fl(10.001), fl(20.0)))
	// ~55 km away, outside the radius.
	workshopRepo.Create(ctx, ws("WS_004", "Camp4", fl(10.5), fl(20.0)))
	// Unknown coordinates, must be skipped.
	workshopRepo.Create(ctx, ws("WS_005", "Camp5", nil, fl(20.0)))

	// Home camp is short: 2 ready units for a request of 5.
	equipmentRepo.Create(ctx, unit(1, "Excavator", "Camp1", domainEquipment.StatusReadyToUse))
	equipmentRepo.Create(ctx, unit(2, "Excavator", "Camp1", domainEquipment.StatusReadyToUse))

	// Camp2: 10 ready, 1 under maintenance, 1 allocated.
	for i := int64(10); i < 20; i++ {
		equipmentRepo.Create(ctx, unit(i, "Excavator", "Camp2", domainEquipment.StatusReadyToUse))
	}
	equipmentRepo.Create(ctx, unit(20, "Excavator", "Camp2", domainEquipment.StatusUnderMaintenance))
	equipmentRepo.Create(ctx, unit(21, "Excavator", "Camp2", domainEquipment.StatusAllocated))

	// Camp3: 1 ready, 1 ready but date-blocked for the window.
	equipmentRepo.Create(ctx, unit(30, "Excavator", "Camp3", domainEquipment.StatusReadyToUse))
	equipmentRepo.Create(ctx, occupiedUnit(31, "Excavator", "Camp3", "2024-01-05", "2024-01-15"))

	// Camp4 and Camp5 have stock too, but are unreachable.
	equipmentRepo.Create(ctx, unit(40, "Excavator", "Camp4", domainEquipment.StatusReadyToUse))
	equipmentRepo.Create(ctx, unit(50, "Excavator", "Camp5", domainEquipment.StatusReadyToUse))

	svc := NewService(workshopRepo, equipmentRepo, 15.0)

	result, err := svc.CheckDemand(ctx, checkRequest("Camp1", 5))
	if err != nil {
		t.Fatalf("CheckDemand failed: %v", err)
	}

	if result.Availability.Available != 2 {
		t.Errorf("expected 2 available at home, got %d", result.Availability.Available)
	}
	if result.Availability.MeetsRequirement {
		t.Error("expected requirement unmet")
	}
	if !result.UI.ShowMap {
		t.Error("map hint must be on when demand is unmet")
	}

	if len(result.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(result.Alternatives))
	}

	first, second := result.Alternatives[0], result.Alternatives[1]
	if first.CampName != "Camp3" {
		t.Errorf("expected nearest camp Camp3 first, got %s", first.CampName)
	}
	if first.DistanceKm != 0.1 {
		t.Errorf("expected rounded distance 0.1, got %f", first.DistanceKm)
	}
	if first.Counts.ReadyToUse != 1 {
		t.Errorf("date-blocked unit must not count as ready: got %d", first.Counts.ReadyToUse)
	}

	if second.CampName != "Camp2" {
		t.Errorf("expected Camp2 second, got %s", second.CampName)
	}
	if second.DistanceKm != 5.6 {
		t.Errorf("expected rounded distance 5.6, got %f", second.DistanceKm)
	}
	if second.Counts.ReadyToUse != 10 {
		t.Errorf("expected 10 ready at Camp2, got %d", second.Counts.ReadyToUse)
	}
	if second.Counts.UnderMaintenance != 1 {
		t.Errorf("expected 1 under maintenance at Camp2, got %d", second.Counts.UnderMaintenance)
	}
}

func TestCheckDemand_EqualDistanceTieBrokenByReadyCount(t *testing.T) {
	ctx := context.Background()

	workshopRepo := &memWorkshopRepo{}
	equipmentRepo := &memEquipmentRepo{}

	workshopRepo.Create(ctx, ws("WS_001", "Camp1", fl(10.0), fl(20.0)))
	// Two camps at the same spot, different stock levels. The poorer one
	// enumerates first.
	workshopRepo.Create(ctx, ws("WS_002", "CampPoor", fl(10.05), fl(20.0)))
	workshopRepo.Create(ctx, ws("WS_003", "CampRich", fl(10.05), fl(20.0)))

	equipmentRepo.Create(ctx, unit(1, "Excavator", "CampPoor", domainEquipment.StatusReadyToUse))
	for i := int64(10); i < 13; i++ {
		equipmentRepo.Create(ctx, unit(i, "Excavator", "CampRich", domainEquipment.StatusReadyToUse))
	}

	svc := NewService(workshopRepo, equipmentRepo, 15.0)

	result, err := svc.CheckDemand(ctx, checkRequest("Camp1", 5))
	if err != nil {
		t.Fatalf("CheckDemand failed: %v", err)
	}

	if len(result.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(result.Alternatives))
	}
	if result.Alternatives[0].CampName != "CampRich" {
		t.Errorf("expected higher ready count first on distance tie, got %s", result.Alternatives[0].CampName)
	}
}

func TestCheckDemand_EquipmentNameSubstringMatch(t *testing.T) {
	ctx := context.Background()

	workshopRepo := &memWorkshopRepo{}
	equipmentRepo := &memEquipmentRepo{}
	workshopRepo.Create(ctx, ws("WS_001", "Camp1", fl(10.0), fl(20.0)))
	equipmentRepo.Create(ctx, unit(1, "Heavy EXCAVATOR CAT-320", "Camp1", domainEquipment.StatusReadyToUse))
	equipmentRepo.Create(ctx, unit(2, "Bulldozer", "Camp1", domainEquipment.StatusReadyToUse))

	svc := NewService(workshopRepo, equipmentRepo, 15.0)

	result, err := svc.CheckDemand(ctx, checkRequest("Camp1", 1))
	if err != nil {
		t.Fatalf("CheckDemand failed: %v", err)
	}
	if result.Availability.Available != 1 {
		t.Errorf("expected substring match to find exactly 1 unit, got %d", result.Availability.Available)
	}
}

func TestCheckDemand_CustomRadius(t *testing.T) {
	ctx := context.Background()

	workshopRepo := &memWorkshopRepo{}
	equipmentRepo := &memEquipmentRepo{}
	workshopRepo.Create(ctx, ws("WS_001", "Camp1", fl(10.0), fl(20.0)))
	// ~5.6 km away; inside the default radius, outside a 2 km one.
	workshopRepo.Create(ctx, ws("WS_002", "Camp2", fl(10.05), fl(20.0)))
	equipmentRepo.Create(ctx, unit(10, "Excavator", "Camp2", domainEquipment.StatusReadyToUse))

	svc := NewService(workshopRepo, equipmentRepo, 15.0)

	req := checkRequest("Camp1", 1)
	radius := 2.0
	req.RadiusKm = &radius

	result, err := svc.CheckDemand(ctx, req)
	if err != nil {
		t.Fatalf("CheckDemand failed: %v", err)
	}
	if len(result.Alternatives) != 0 {
		t.Errorf("expected no alternatives inside 2 km, got %d", len(result.Alternatives))
	}
	if result.UI.RadiusKm != 2.0 {
		t.Errorf("expected radius echo 2.0, got %f", result.UI.RadiusKm)
	}
}

func TestCheckDemand_Idempotent(t *testing.T) {
	ctx := context.Background()

	workshopRepo := &memWorkshopRepo{}
	equipmentRepo := &memEquipmentRepo{}
	workshopRepo.Create(ctx, ws("WS_001", "Camp1", fl(10.0), fl(20.0)))
	workshopRepo.Create(ctx, ws("WS_002", "Camp2", fl(10.05), fl(20.0)))
	equipmentRepo.Create(ctx, unit(1, "Excavator", "Camp1", domainEquipment.StatusReadyToUse))
	equipmentRepo.Create(ctx, unit(10, "Excavator", "Camp2", domainEquipment.StatusReadyToUse))

	svc := NewService(workshopRepo, equipmentRepo, 15.0)

	first, err := svc.CheckDemand(ctx, checkRequest("Camp1", 3))
	if err != nil {
		t.Fatalf("CheckDemand failed: %v", err)
	}
	second, err := svc.CheckDemand(ctx, checkRequest("Camp1", 3))
	if err != nil {
		t.Fatalf("CheckDemand failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs against unchanged state must yield identical results")
	}
}

func TestCheckDemand_RejectsInvalidInput(t *testing.T) {
	svc := NewService(&memWorkshopRepo{}, &memEquipmentRepo{}, 15.0)

	cases := []*CheckDemandRequest{
		{CampName: "", EquipmentName: "Excavator", StartDate: "2024-01-01", EndDate: "2024-01-10", Quantity: 1},
		{CampName: "Camp1", EquipmentName: "Excavator", StartDate: "not-a-date", EndDate: "2024-01-10", Quantity: 1},
		{CampName: "Camp1", EquipmentName: "Excavator", StartDate: "2024-01-01", EndDate: "2024-01-10", Quantity: 0},
	}

	for i, req := range cases {
		if _, err := svc.CheckDemand(context.Background(), req); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
