package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
	"fleet-equipment-tracker/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// EquipmentRepository implements domain equipment.Repository interface
type EquipmentRepository struct {
	db *DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *DB) domainEquipment.Repository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domainEquipment.Equipment) error {
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()
	if e.Status == "" {
		e.Status = domainEquipment.StatusReadyToUse
	}

	dbModel := toEquipmentModel(e)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return domainEquipment.ErrEquipmentAlreadyExists
		}
		return fmt.Errorf("failed to create equipment: %w", err)
	}

	e.ID = dbModel.ID
	e.CreatedAt = dbModel.CreatedAt
	e.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domainEquipment.Equipment, error) {
	var dbModel models.EquipmentModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainEquipment.ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	return toEquipmentEntity(&dbModel), nil
}

// FindByCampAndName applies the case-insensitive substring semantics
// demand matching depends on: both fragments use ILIKE containment, and
// an empty fragment matches everything.
func (r *EquipmentRepository) FindByCampAndName(ctx context.Context, campName, name string) ([]*domainEquipment.Equipment, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.EquipmentModel{})

	if campName != "" {
		query = query.Where("camp_name ILIKE ?", "%"+campName+"%")
	}
	if name != "" {
		query = query.Where("equipment_name ILIKE ?", "%"+name+"%")
	}

	var dbModels []models.EquipmentModel
	if err := query.Order("id").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	items := make([]*domainEquipment.Equipment, 0, len(dbModels))
	for i := range dbModels {
		items = append(items, toEquipmentEntity(&dbModels[i]))
	}

	return items, nil
}

func (r *EquipmentRepository) List(ctx context.Context, filter *domainEquipment.Filter) ([]*domainEquipment.Equipment, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.EquipmentModel{})

	if filter != nil {
		if filter.CampName != "" {
			query = query.Where("camp_name ILIKE ?", "%"+filter.CampName+"%")
		}
		if filter.Name != "" {
			query = query.Where("equipment_name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.Region != "" {
			query = query.Where("region ILIKE ?", "%"+filter.Region+"%")
		}
		if filter.Status != nil {
			query = query.Where("status = ?", string(*filter.Status))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count equipment: %w", err)
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

	var dbModels []models.EquipmentModel
	err := query.
		Order("id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list equipment: %w", err)
	}

	items := make([]*domainEquipment.Equipment, 0, len(dbModels))
	for i := range dbModels {
		items = append(items, toEquipmentEntity(&dbModels[i]))
	}

	return items, total, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domainEquipment.Equipment) error {
	e.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.EquipmentModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"equipment_name":        e.Name,
			"camp_name":             e.CampName,
			"region":                e.Region,
			"status":                string(e.Status),
			"next_maintenance_date": e.NextMaintenanceDate,
			"start_date":            e.StartDate,
			"end_date":              e.EndDate,
			"updated_at":            e.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainEquipment.ErrEquipmentNotFound
	}

	return nil
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, id int64, status domainEquipment.Status) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.EquipmentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainEquipment.ErrEquipmentNotFound
	}

	return nil
}

func (r *EquipmentRepository) UpdateOccupancy(ctx context.Context, id int64, start, end, nextMaintenance *time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.EquipmentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"start_date":            start,
			"end_date":              end,
			"next_maintenance_date": nextMaintenance,
			"updated_at":            time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment occupancy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainEquipment.ErrEquipmentNotFound
	}

	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.EquipmentModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainEquipment.ErrEquipmentNotFound
	}

	return nil
}

func toEquipmentModel(e *domainEquipment.Equipment) *models.EquipmentModel {
	return &models.EquipmentModel{
		ID:                  e.ID,
		Name:                e.Name,
		CampName:            e.CampName,
		Region:              e.Region,
		Status:              string(e.Status),
		NextMaintenanceDate: e.NextMaintenanceDate,
		StartDate:           e.StartDate,
		EndDate:             e.EndDate,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func toEquipmentEntity(m *models.EquipmentModel) *domainEquipment.Equipment {
	return &domainEquipment.Equipment{
		ID:                  m.ID,
		Name:                m.Name,
		CampName:            m.CampName,
		Region:              m.Region,
		Status:              domainEquipment.Status(m.Status),
		NextMaintenanceDate: m.NextMaintenanceDate,
		StartDate:           m.StartDate,
		EndDate:             m.EndDate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
