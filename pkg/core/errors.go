package core

import "errors"

// Common errors.
var (
	ErrFileNotFound  = errors.New("log file not found")
	ErrAmbiguousPath = errors.New("path matches more than one file")
	ErrInvalidDate   = errors.New("date must be in YYYYMMDD form")
	ErrNotWatchable  = errors.New("source does not support watching")
)
