package service

import "errors"

var (
	ErrInvalidName        = errors.New("invalid respondent name")
	ErrScreeningCompleted = errors.New("screening already completed")
	ErrIncomplete         = errors.New("screening incomplete")
	ErrInvalidAnswer      = errors.New("invalid answer")
)
