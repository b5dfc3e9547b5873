package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
	PositionBench      Position = "Bench"
)

var Positions = []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward, PositionBench}

var ErrInvalidPosition = errors.New("invalid position")

func (p Position) IsValid() bool {
	for _, v := range Positions {
		if p == v {
			return true
		}
	}
	return false
}

func (p *Position) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*p = Position(v)
	case string:
		*p = Position(v)
	default:
		return fmt.Errorf("failed to scan Position value: %v", value)
	}
	return nil
}

func (p Position) Value() (driver.Value, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPosition, string(p))
	}
	return string(p), nil
}
