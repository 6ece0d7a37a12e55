package upload

import "errors"

var (
	ErrNoFiles         = errors.New("no files uploaded")
	ErrTooManyFiles    = errors.New("cannot upload more than 6 images")
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds the 5MB limit")
	ErrInvalidMimeType = errors.New("only jpeg, png and webp images are accepted")
)
