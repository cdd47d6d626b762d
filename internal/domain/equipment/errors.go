package equipment

import "errors"

var (
	ErrEquipmentNotFound      = errors.New("equipment not found")
	ErrEquipmentAlreadyExists = errors.New("equipment already exists")
	ErrInvalidStatus          = errors.New("invalid equipment status")
)
