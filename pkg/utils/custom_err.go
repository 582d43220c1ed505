package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password too short")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrMissingFields    = errors.New("missing required fields")
	ErrPhotoMissing     = errors.New("no photo uploaded")
	ErrPhotoTooLarge    = errors.New("photo exceeds size limit")
	ErrUnsupportedMedia = errors.New("unsupported media type")

	ErrMonasteryNotFound = errors.New("monastery not found")
	ErrSlideshowEmpty    = errors.New("slideshow has no slides")
)

// PhotoSizeError carries the configured upload limit. It matches
// ErrPhotoTooLarge under errors.Is.
type PhotoSizeError struct {
	Limit int64
}

func (e *PhotoSizeError) Error() string {
	return fmt.Sprintf("%s (%d bytes)", ErrPhotoTooLarge, e.Limit)
}

func (e *PhotoSizeError) Is(target error) bool {
	return target == ErrPhotoTooLarge
}
