package handler

import (
	"errors"
	"net/http"

	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
	domainWorkorder "fleet-equipment-tracker/internal/domain/workorder"
	domainWorkshop "fleet-equipment-tracker/internal/domain/workshop"
	appErrors "fleet-equipment-tracker/pkg/errors"
)

// statusForError maps domain errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domainWorkshop.ErrCampNotFound),
		errors.Is(err, domainWorkshop.ErrWorkshopNotFound),
		errors.Is(err, domainEquipment.ErrEquipmentNotFound),
		errors.Is(err, domainWorkorder.ErrWorkorderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainEquipment.ErrEquipmentAlreadyExists),
		errors.Is(err, domainWorkshop.ErrWorkshopAlreadyExists),
		errors.Is(err, domainWorkorder.ErrWorkorderAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domainEquipment.ErrInvalidStatus),
		errors.Is(err, appErrors.ErrInvalidInput):
		return http.StatusBadRequest
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
