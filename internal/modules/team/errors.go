package team

import "errors"

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrSeriesNotFound   = errors.New("referenced series does not exist")
	ErrTeamNameRequired = errors.New("team name cannot be empty")
	ErrTeamInternal     = errors.New("team module internal error")
)
