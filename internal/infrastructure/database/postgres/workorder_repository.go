package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainWorkorder "fleet-equipment-tracker/internal/domain/workorder"
	"fleet-equipment-tracker/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// WorkorderRepository implements domain workorder.Repository interface
type WorkorderRepository struct {
	db *DB
}

// NewWorkorderRepository creates a new workorder repository
func NewWorkorderRepository(db *DB) domainWorkorder.Repository {
	return &WorkorderRepository{db: db}
}

func (r *WorkorderRepository) Create(ctx context.Context, w *domainWorkorder.Workorder) error {
	w.CreatedAt = time.Now()
	w.UpdatedAt = time.Now()

	dbModel := toWorkorderModel(w)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return domainWorkorder.ErrWorkorderAlreadyExists
		}
		return fmt.Errorf("failed to create workorder: %w", err)
	}

	return nil
}

func (r *WorkorderRepository) GetByNumber(ctx context.Context, number string) (*domainWorkorder.Workorder, error) {
	var dbModel models.WorkorderModel
	err := r.db.DB.WithContext(ctx).
		Where("workorder_number = ?", number).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainWorkorder.ErrWorkorderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workorder: %w", err)
	}

	return toWorkorderEntity(&dbModel), nil
}

func (r *WorkorderRepository) List(ctx context.Context, filter *domainWorkorder.Filter) ([]*domainWorkorder.Workorder, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.WorkorderModel{})

	if filter != nil {
		if filter.EquipmentID != nil {
			query = query.Where("equipment_id = ?", *filter.EquipmentID)
		}
		if filter.WorkshopID != nil {
			query = query.Where("workshop_id = ?", *filter.WorkshopID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count workorders: %w", err)
	}

	page, pageSize := 1, 50
	if filter != nil {
		if filter.Page > 0 {
			page = filter.Page
		}
		if filter.PageSize > 0 {
			pageSize = filter.PageSize
		}
	}

	var dbModels []models.WorkorderModel
	err := query.
		Order("workorder_number").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workorders: %w", err)
	}

	items := make([]*domainWorkorder.Workorder, 0, len(dbModels))
	for i := range dbModels {
		items = append(items, toWorkorderEntity(&dbModels[i]))
	}

	return items, total, nil
}

func (r *WorkorderRepository) Update(ctx context.Context, w *domainWorkorder.Workorder) error {
	w.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.WorkorderModel{}).
		Where("workorder_number = ?", w.Number).
		Updates(map[string]interface{}{
			"equipment_id":           w.EquipmentID,
			"workshop_id":            w.WorkshopID,
			"workorder_description":  w.Description,
			"maintenance_start_date": w.MaintenanceStartDate,
			"maintenance_end_date":   w.MaintenanceEndDate,
			"updated_at":             w.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update workorder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainWorkorder.ErrWorkorderNotFound
	}

	return nil
}

func (r *WorkorderRepository) Delete(ctx context.Context, number string) error {
	result := r.db.DB.WithContext(ctx).
		Where("workorder_number = ?", number).
		Delete(&models.WorkorderModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete workorder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainWorkorder.ErrWorkorderNotFound
	}

	return nil
}

func toWorkorderModel(w *domainWorkorder.Workorder) *models.WorkorderModel {
	return &models.WorkorderModel{
		Number:               w.Number,
		EquipmentID:          w.EquipmentID,
		WorkshopID:           w.WorkshopID,
		Description:          w.Description,
		MaintenanceStartDate: w.MaintenanceStartDate,
		MaintenanceEndDate:   w.MaintenanceEndDate,
		CreatedAt:            w.CreatedAt,
		UpdatedAt:            w.UpdatedAt,
	}
}

func toWorkorderEntity(m *models.WorkorderModel) *domainWorkorder.Workorder {
	return &domainWorkorder.Workorder{
		Number:               m.Number,
		EquipmentID:          m.EquipmentID,
		WorkshopID:           m.WorkshopID,
		Description:          m.Description,
		MaintenanceStartDate: m.MaintenanceStartDate,
		MaintenanceEndDate:   m.MaintenanceEndDate,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
