package util

import "errors"

var (
	ErrEmptyGoal       = errors.New("goal must not be empty")
	ErrInvalidLevel    = errors.New("invalid experience level")
	ErrUnexpectedShape = errors.New("unexpected response shape")
	ErrMissingAPIKey   = errors.New("AI API key is required but not configured")
	ErrEmptyResponse   = errors.New("AI returned an empty response")
)
