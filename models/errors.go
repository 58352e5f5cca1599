package models

import "errors"

// Every failure in this subsystem is a distinguishable, recoverable
// outcome; none of these should ever terminate the caller.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrFileType           = errors.New("unacceptable file type")
	ErrStorage            = errors.New("file storage failure")
	ErrHeaderLength       = errors.New("header longer than 32 characters")
)
