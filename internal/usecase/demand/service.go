package demand

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
	domainWorkshop "fleet-equipment-tracker/internal/domain/workshop"
	"fleet-equipment-tracker/internal/logger"
	appErrors "fleet-equipment-tracker/pkg/errors"
	"fleet-equipment-tracker/pkg/geo"
	"fleet-equipment-tracker/pkg/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Service implements the demand-matching use case. It is read-only:
// every call performs a bounded sequence of queries and materializes a
// complete result.
type Service struct {
	workshopRepo    domainWorkshop.Repository
	equipmentRepo   domainEquipment.Repository
	defaultRadiusKm float64
}

// NewService creates a new demand service
func NewService(
	workshopRepo domainWorkshop.Repository,
	equipmentRepo domainEquipment.Repository,
	defaultRadiusKm float64,
) *Service {
	return &Service{
		workshopRepo:    workshopRepo,
		equipmentRepo:   equipmentRepo,
		defaultRadiusKm: defaultRadiusKm,
	}
}

// CheckDemand evaluates whether the home camp can satisfy the request
// and, when it cannot, ranks nearby camps that could. Fails only when
// the camp has no workshop record; everything else degrades (unknown
// distances exclude the candidate, missing unit dates count the unit as
// unconstrained).
func (s *Service) CheckDemand(ctx context.Context, req *CheckDemandRequest) (*DemandResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid start_date", err)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid end_date", err)
	}

	radiusKm := s.defaultRadiusKm
	if req.RadiusKm != nil {
		radiusKm = *req.RadiusKm
	}

	homeWorkshop, err := s.workshopRepo.FindByCampName(ctx, req.CampName)
	if err != nil {
		if err == domainWorkshop.ErrCampNotFound {
			return nil, appErrors.NewAppError(
				"CAMP_NOT_FOUND",
				fmt.Sprintf("Camp '%s' not found in workshops", req.CampName),
				domainWorkshop.ErrCampNotFound,
			)
		}
		return nil, err
	}

	homeUnits, err := s.equipmentRepo.FindByCampAndName(ctx, req.CampName, req.EquipmentName)
	if err != nil {
		return nil, err
	}

	available := 0
	for _, unit := range homeUnits {
		if unit.IsAvailable(startDate, endDate) {
			available++
		}
	}
	meets := available >= req.Quantity

	result := &DemandResult{
		CampName: req.CampName,
		Requested: RequestedInfo{
			EquipmentName: req.EquipmentName,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Quantity:      req.Quantity,
		},
		Availability: AvailabilityInfo{
			Available:        available,
			MeetsRequirement: meets,
		},
		UI: MapHint{
			ShowMap:  !meets,
			Center:   Coordinates{Lat: homeWorkshop.LocationLat, Lon: homeWorkshop.LocationLon},
			RadiusKm: radiusKm,
		},
		Alternatives: []AlternativeCamp{},
	}

	if meets {
		logger.Info("Demand satisfied at home camp",
			zap.String("camp_name", req.CampName),
			zap.String("equipment_name", req.EquipmentName),
			zap.Int("available", available),
			zap.Int("requested", req.Quantity),
		)
		return result, nil
	}

	alternatives, err := s.rankAlternatives(ctx, homeWorkshop, req, startDate, endDate, radiusKm)
	if err != nil {
		return nil, err
	}
	result.Alternatives = alternatives

	logger.Info("Demand unmet at home camp",
		zap.String("camp_name", req.CampName),
		zap.String("equipment_name", req.EquipmentName),
		zap.Int("available", available),
		zap.Int("requested", req.Quantity),
		zap.Int("alternatives", len(alternatives)),
	)

	return result, nil
}

// rankAlternatives scans every other workshop within radiusKm of the
// home camp and partitions its matching equipment into ready and
// under-maintenance counts. The under-maintenance count is not date
// filtered; Allocated units and date-blocked ReadyToUse units land in
// neither bucket.
func (s *Service) rankAlternatives(
	ctx context.Context,
	home *domainWorkshop.Workshop,
	req *CheckDemandRequest,
	startDate, endDate time.Time,
	radiusKm float64,
) ([]AlternativeCamp, error) {
	allWorkshops, err := s.workshopRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	alternatives := make([]AlternativeCamp, 0)
	for _, ws := range allWorkshops {
		if strings.EqualFold(ws.CampName, req.CampName) {
			continue
		}
		if !ws.HasLocation() {
			continue
		}

		distKm, known := geo.DistanceKm(home.LocationLat, home.LocationLon, ws.LocationLat, ws.LocationLon)
		if !known || distKm > radiusKm {
			continue
		}

		units, err := s.equipmentRepo.FindByCampAndName(ctx, ws.CampName, req.EquipmentName)
		if err != nil {
			return nil, err
		}

		ready, maintenance := 0, 0
		for _, unit := range units {
			switch {
			case unit.Status == domainEquipment.StatusUnderMaintenance:
				maintenance++
			case unit.Status == domainEquipment.StatusReadyToUse && unit.IsAvailable(startDate, endDate):
				ready++
			}
		}

		alternatives = append(alternatives, AlternativeCamp{
			CampName:   ws.CampName,
			WorkshopID: ws.ID,
			DistanceKm: roundKm(distKm),
			Location:   Coordinates{Lat: ws.LocationLat, Lon: ws.LocationLon},
			Counts: AlternativeCounts{
				ReadyToUse:       ready,
				UnderMaintenance: maintenance,
			},
		})
	}

	// Nearest first; among equally distant camps the one with more ready
	// units ranks first. Stable, so remaining ties keep enumeration order.
	sort.SliceStable(alternatives, func(i, j int) bool {
		if alternatives[i].DistanceKm != alternatives[j].DistanceKm {
			return alternatives[i].DistanceKm < alternatives[j].DistanceKm
		}
		return alternatives[i].Counts.ReadyToUse > alternatives[j].Counts.ReadyToUse
	})

	return alternatives, nil
}

// roundKm rounds to one decimal; the rounded value is both displayed
// and used as the sort key.
func roundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
