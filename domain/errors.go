package domain

import "errors"

// Blueprint errors shared by the service, storage and API layers.
var (
	ErrBlueprintNotFound   = errors.New("blueprint not found")
	ErrInvalidName         = errors.New("invalid blueprint name")
	ErrInvalidMaze         = errors.New("blueprint has no maze")
	ErrForbidden           = errors.New("blueprint belongs to another author")
	ErrDimensionOutOfRange = errors.New("maze dimension out of range")
	ErrEditConflict        = errors.New("blueprint is being edited")
)
