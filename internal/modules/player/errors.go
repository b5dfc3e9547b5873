package player

import (
	"errors"
	"fmt"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTeamNotFound       = errors.New("referenced team does not exist")
	ErrRequiredFieldEmpty = errors.New("name, jerseyNumber and position cannot be empty")
	ErrPlayerInternal     = errors.New("player module internal error")
	ErrInvalidImport      = errors.New("invalid import file")
)

// Внутренние коды ошибок, которые видит клиент.
const (
	CodeCreateFailed      = "ERR_001"
	CodeUpdateFailed      = "ERR_002"
	CodeImageUpdateFailed = "ERR_003"
	CodeNoImage           = "ERR_004"
)

// ImportError описывает, какая строка таблицы не прошла проверку.
type ImportError struct {
	Row    int
	Column string
	Reason string
}

func (e *ImportError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidImport, e.Reason)
	}
	return fmt.Sprintf("%s: row %d, column %q: %s", ErrInvalidImport, e.Row, e.Column, e.Reason)
}

func (e *ImportError) Unwrap() error {
	return ErrInvalidImport
}
