package series

import "errors"

var (
	ErrSeriesNotFound     = errors.New("series not found")
	ErrSeriesExists       = errors.New("series with this name and season already exists")
	ErrSeriesNameRequired = errors.New("series name cannot be empty")
	ErrSeriesInternal     = errors.New("series module internal error")
)
