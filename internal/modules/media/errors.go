package media

import "errors"

var (
	ErrNoImage         = errors.New("no image file provided")
	ErrInvalidImage    = errors.New("invalid image file, supported formats are jpg, jpeg, png, webp, or non-animated gif")
	ErrImageTooLarge   = errors.New("image file size exceeds allowed limit")
	ErrInvalidPath     = errors.New("invalid upload path")
	ErrStorageInternal = errors.New("image storage internal error")
)
