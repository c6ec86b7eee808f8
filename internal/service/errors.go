package service

import "errors"

var (
	// ErrInvalidStatus - el estado solicitado no pertenece al catálogo
	ErrInvalidStatus = errors.New("invalid status")
	// ErrBackwardTransition - transición de estado hacia atrás; los estados solo avanzan
	ErrBackwardTransition = errors.New("status transition not allowed")
)
