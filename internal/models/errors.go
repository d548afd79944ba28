package models

import "errors"

// Custom errors
var (
	ErrInvalidInput        = errors.New("invalid input: non-finite or out-of-range value")
	ErrInvalidVariance     = errors.New("invalid variance: standard deviation must be positive")
	ErrInvalidOdds         = errors.New("invalid odds: american odds must be nonzero")
	ErrInvalidSampleCount  = errors.New("invalid sample count: must be between 1000 and 20000")
	ErrProfileNameRequired = errors.New("profile name is required")
	ErrNotFound            = errors.New("record not found")
)
