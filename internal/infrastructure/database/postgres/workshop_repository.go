package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainWorkshop "fleet-equipment-tracker/internal/domain/workshop"
	"fleet-equipment-tracker/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// WorkshopRepository implements domain workshop.Repository interface
type WorkshopRepository struct {
	db *DB
}

// NewWorkshopRepository creates a new workshop repository
func NewWorkshopRepository(db *DB) domainWorkshop.Repository {
	return &WorkshopRepository{db: db}
}

func (r *WorkshopRepository) Create(ctx context.Context, w *domainWorkshop.Workshop) error {
	w.CreatedAt = time.Now()
	w.UpdatedAt = time.Now()

	dbModel := toWorkshopModel(w)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return domainWorkshop.ErrWorkshopAlreadyExists
		}
		return fmt.Errorf("failed to create workshop: %w", err)
	}

	return nil
}

func (r *WorkshopRepository) GetByID(ctx context.Context, id string) (*domainWorkshop.Workshop, error) {
	var dbModel models.WorkshopModel
	err := r.db.DB.WithContext(ctx).
		Where("workshop_id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainWorkshop.ErrWorkshopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workshop: %w", err)
	}

	return toWorkshopEntity(&dbModel), nil
}

// FindByCampName resolves a camp case-insensitively but exactly: camp
// resolution must not fall back to substring matching.
func (r *WorkshopRepository) FindByCampName(ctx context.Context, campName string) (*domainWorkshop.Workshop, error) {
	var dbModel models.WorkshopModel
	err := r.db.DB.WithContext(ctx).
		Where("LOWER(camp_name) = LOWER(?)", campName).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainWorkshop.ErrCampNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find workshop by camp name: %w", err)
	}

	return toWorkshopEntity(&dbModel), nil
}

func (r *WorkshopRepository) List(ctx context.Context, filter *domainWorkshop.Filter) ([]*domainWorkshop.Workshop, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.WorkshopModel{})

	if filter != nil {
		if filter.CampName != "" {
			query = query.Where("camp_name ILIKE ?", "%"+filter.CampName+"%")
		}
		if filter.LatMin != nil {
			query = query.Where("location_lat >= ?", *filter.LatMin)
		}
		if filter.LatMax != nil {
			query = query.Where("location_lat <= ?", *filter.LatMax)
		}
		if filter.LonMin != nil {
			query = query.Where("location_lon >= ?", *filter.LonMin)
		}
		if filter.LonMax != nil {
			query = query.Where("location_lon <= ?", *filter.LonMax)
		}
	}

	var dbModels []models.WorkshopModel
	if err := query.Order("workshop_id").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list workshops: %w", err)
	}

	items := make([]*domainWorkshop.Workshop, 0, len(dbModels))
	for i := range dbModels {
		items = append(items, toWorkshopEntity(&dbModels[i]))
	}

	return items, nil
}

func (r *WorkshopRepository) Update(ctx context.Context, w *domainWorkshop.Workshop) error {
	w.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.WorkshopModel{}).
		Where("workshop_id = ?", w.ID).
		Updates(map[string]interface{}{
			"camp_name":    w.CampName,
			"location_lat": w.LocationLat,
			"location_lon": w.LocationLon,
			"updated_at":   w.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update workshop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainWorkshop.ErrWorkshopNotFound
	}

	return nil
}

func (r *WorkshopRepository) Delete(ctx context.Context, id string) error {
	result := r.db.DB.WithContext(ctx).
		Where("workshop_id = ?", id).
		Delete(&models.WorkshopModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete workshop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainWorkshop.ErrWorkshopNotFound
	}

	return nil
}

func toWorkshopModel(w *domainWorkshop.Workshop) *models.WorkshopModel {
	return &models.WorkshopModel{
		ID:          w.ID,
		CampName:    w.CampName,
		LocationLat: w.LocationLat,
		LocationLon: w.LocationLon,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func toWorkshopEntity(m *models.WorkshopModel) *domainWorkshop.Workshop {
	return &domainWorkshop.Workshop{
		ID:          m.ID,
		CampName:    m.CampName,
		LocationLat: m.LocationLat,
		LocationLon: m.LocationLon,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
