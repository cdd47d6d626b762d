package workorder

import "errors"

var (
	ErrWorkorderNotFound      = errors.New("workorder not found")
	ErrWorkorderAlreadyExists = errors.New("workorder already exists")
)
