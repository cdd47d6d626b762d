package workorder

import (
	"context"
	"time"

	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
	domainWorkorder "fleet-equipment-tracker/internal/domain/workorder"
	"fleet-equipment-tracker/internal/logger"
	appErrors "fleet-equipment-tracker/pkg/errors"
	"fleet-equipment-tracker/pkg/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Service implements workorder use cases
type Service struct {
	workorderRepo domainWorkorder.Repository
	equipmentRepo domainEquipment.Repository
}

// NewService creates a new workorder service
func NewService(workorderRepo domainWorkorder.Repository, equipmentRepo domainEquipment.Repository) *Service {
	return &Service{
		workorderRepo: workorderRepo,
		equipmentRepo: equipmentRepo,
	}
}

func (s *Service) CreateWorkorder(ctx context.Context, req *CreateWorkorderRequest) (*WorkorderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	// The workorder must reference an existing unit.
	if _, err := s.equipmentRepo.GetByID(ctx, req.EquipmentID); err != nil {
		return nil, err
	}

	startDate, err := parseOptionalDate(req.MaintenanceStartDate)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid maintenance_start_date", err)
	}
	endDate, err := parseOptionalDate(req.MaintenanceEndDate)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid maintenance_end_date", err)
	}

	description := req.Description
	if description != nil {
		sanitized := utils.SanitizeString(*description)
		description = &sanitized
	}

	w := &domainWorkorder.Workorder{
		Number:               req.Number,
		EquipmentID:          req.EquipmentID,
		WorkshopID:           req.WorkshopID,
		Description:          description,
		MaintenanceStartDate: startDate,
		MaintenanceEndDate:   endDate,
	}

	if err := s.workorderRepo.Create(ctx, w); err != nil {
		return nil, err
	}

	logger.Info("Workorder created",
		zap.String("workorder_number", w.Number),
		zap.Int64("equipment_id", w.EquipmentID),
	)

	return toWorkorderResponse(w), nil
}

func (s *Service) GetWorkorder(ctx context.Context, number string) (*WorkorderResponse, error) {
	w, err := s.workorderRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	return toWorkorderResponse(w), nil
}

func (s *Service) ListWorkorders(ctx context.Context, req *WorkorderFilterRequest) (*WorkorderListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query parameters", err)
	}

	filter := &domainWorkorder.Filter{
		EquipmentID: req.EquipmentID,
		WorkshopID:  req.WorkshopID,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}

	items, total, err := s.workorderRepo.List(ctx, filter)
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

	responses := make([]WorkorderResponse, 0, len(items))
	for _, w := range items {
		responses = append(responses, *toWorkorderResponse(w))
	}

	return &WorkorderListResponse{
		Workorders: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// UpdateWorkorder applies a sparse update: only fields present in the
// request are assigned.
func (s *Service) UpdateWorkorder(ctx context.Context, number string, req *UpdateWorkorderRequest) (*WorkorderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	w, err := s.workorderRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	startDate, err := parseOptionalDate(req.MaintenanceStartDate)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid maintenance_start_date", err)
	}
	endDate, err := parseOptionalDate(req.MaintenanceEndDate)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid maintenance_end_date", err)
	}

	if req.EquipmentID != nil {
		if _, err := s.equipmentRepo.GetByID(ctx, *req.EquipmentID); err != nil {
			return nil, err
		}
		w.EquipmentID = *req.EquipmentID
	}
	if req.WorkshopID != nil {
		w.WorkshopID = req.WorkshopID
	}
	if req.Description != nil {
		sanitized := utils.SanitizeString(*req.Description)
		w.Description = &sanitized
	}
	if req.MaintenanceStartDate != nil {
		w.MaintenanceStartDate = startDate
	}
	if req.MaintenanceEndDate != nil {
		w.MaintenanceEndDate = endDate
	}

	if err := s.workorderRepo.Update(ctx, w); err != nil {
		return nil, err
	}

	logger.Info("Workorder updated", zap.String("workorder_number", number))

	return toWorkorderResponse(w), nil
}

func (s *Service) DeleteWorkorder(ctx context.Context, number string) error {
	if err := s.workorderRepo.Delete(ctx, number); err != nil {
		return err
	}

	logger.Info("Workorder deleted", zap.String("workorder_number", number))
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
