package workshop

import (
	"context"

	domainWorkshop "fleet-equipment-tracker/internal/domain/workshop"
	"fleet-equipment-tracker/internal/logger"
	appErrors "fleet-equipment-tracker/pkg/errors"
	"fleet-equipment-tracker/pkg/utils"

	"go.uber.org/zap"
)

// Service implements workshop use cases
type Service struct {
	workshopRepo domainWorkshop.Repository
}

// NewService creates a new workshop service
func NewService(workshopRepo domainWorkshop.Repository) *Service {
	return &Service{workshopRepo: workshopRepo}
}

func (s *Service) CreateWorkshop(ctx context.Context, req *CreateWorkshopRequest) (*WorkshopResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	w := &domainWorkshop.Workshop{
		ID:          req.ID,
		CampName:    utils.SanitizeString(req.CampName),
		LocationLat: req.LocationLat,
		LocationLon: req.LocationLon,
	}

	if err := s.workshopRepo.Create(ctx, w); err != nil {
		return nil, err
	}

	logger.Info("Workshop created",
		zap.String("workshop_id", w.ID),
		zap.String("camp_name", w.CampName),
	)

	return toWorkshopResponse(w), nil
}

func (s *Service) GetWorkshop(ctx context.Context, id string) (*WorkshopResponse, error) {
	w, err := s.workshopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toWorkshopResponse(w), nil
}

func (s *Service) ListWorkshops(ctx context.Context, req *WorkshopFilterRequest) (*WorkshopListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query parameters", err)
	}

	filter := &domainWorkshop.Filter{
		CampName: req.CampName,
		LatMin:   req.LatMin,
		LatMax:   req.LatMax,
		LonMin:   req.LonMin,
		LonMax:   req.LonMax,
	}

	items, err := s.workshopRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]WorkshopResponse, 0, len(items))
	for _, w := range items {
		responses = append(responses, *toWorkshopResponse(w))
	}

	return &WorkshopListResponse{
		Workshops: responses,
		Total:     len(responses),
	}, nil
}

// UpdateWorkshop applies a sparse update: only fields present in the
// request are assigned.
func (s *Service) UpdateWorkshop(ctx context.Context, id string, req *UpdateWorkshopRequest) (*WorkshopResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	w, err := s.workshopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CampName != nil {
		w.CampName = utils.SanitizeString(*req.CampName)
	}
	if req.LocationLat != nil {
		w.LocationLat = req.LocationLat
	}
	if req.LocationLon != nil {
		w.LocationLon = req.LocationLon
	}

	if err := s.workshopRepo.Update(ctx, w); err != nil {
		return nil, err
	}

	logger.Info("Workshop updated", zap.String("workshop_id", id))

	return toWorkshopResponse(w), nil
}

func (s *Service) DeleteWorkshop(ctx context.Context, id string) error {
	if err := s.workshopRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Workshop deleted", zap.String("workshop_id", id))
	return nil
}
