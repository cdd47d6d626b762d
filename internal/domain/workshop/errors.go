package workshop

import "errors"

var (
	ErrWorkshopNotFound      = errors.New("workshop not found")
	ErrWorkshopAlreadyExists = errors.New("workshop already exists")
	ErrCampNotFound          = errors.New("camp not found in workshops")
)
