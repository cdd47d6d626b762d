package equipment

import (
	"context"
	"time"

	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
	"fleet-equipment-tracker/internal/logger"
	appErrors "fleet-equipment-tracker/pkg/errors"
	"fleet-equipment-tracker/pkg/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Service implements equipment use cases
type Service struct {
	equipmentRepo domainEquipment.Repository
}

// NewService creates a new equipment service
func NewService(equipmentRepo domainEquipment.Repository) *Service {
	return &Service{equipmentRepo: equipmentRepo}
}

func (s *Service) CreateEquipment(ctx context.Context, req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	status := domainEquipment.StatusReadyToUse
	if req.Status != nil {
		status = domainEquipment.Status(*req.Status)
	}

	nextMaintenance, err := parseOptionalDate(req.NextMaintenanceDate)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid next_maintenance_date", err)
	}
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid start_date", err)
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid end_date", err)
	}

	e := &domainEquipment.Equipment{
		ID:                  req.ID,
		Name:                utils.SanitizeString(req.Name),
		CampName:            utils.SanitizeString(req.CampName),
		Region:              req.Region,
		Status:              status,
		NextMaintenanceDate: nextMaintenance,
		StartDate:           startDate,
		EndDate:             endDate,
	}

	if err := s.equipmentRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	logger.Info("Equipment created",
		zap.Int64("equipment_id", e.ID),
		zap.String("camp_name", e.CampName),
		zap.String("status", string(e.Status)),
	)

	return toEquipmentResponse(e), nil
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (*EquipmentResponse, error) {
	e, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toEquipmentResponse(e), nil
}

func (s *Service) ListEquipment(ctx context.Context, req *EquipmentFilterRequest) (*EquipmentListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query parameters", err)
	}

	filter := &domainEquipment.Filter{
		CampName: req.CampName,
		Name:     req.Name,
		Region:   req.Region,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Status != "" {
		status := domainEquipment.Status(req.Status)
		if !domainEquipment.ValidStatus(status) {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid status filter", domainEquipment.ErrInvalidStatus)
		}
		filter.Status = &status
	}

	items, total, err := s.equipmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	page, pageSize := filter.Page, filter.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}

	responses := make([]EquipmentResponse, 0, len(items))
	for _, e := range items {
		responses = append(responses, *toEquipmentResponse(e))
	}

	return &EquipmentListResponse{
		Equipment:  responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}, nil
}

// UpdateEquipment applies a sparse update: only fields present in the
// request are assigned, and the whole request is validated before any
// field is touched.
func (s *Service) UpdateEquipment(ctx context.Context, id int64, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	e, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ApplyUpdate(e, req); err != nil {
		return nil, err
	}

	if err := s.equipmentRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	updated, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("Equipment updated",
		zap.Int64("equipment_id", id),
		zap.String("status", string(updated.Status)),
	)

	return toEquipmentResponse(updated), nil
}

func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Equipment deleted", zap.Int64("equipment_id", id))
	return nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
