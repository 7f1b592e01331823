package service

import "errors"

var (
	// ErrValueOutOfRange indicates the mood value is outside the configured scale
	ErrValueOutOfRange = errors.New("mood value outside the scale")
	// ErrUnknownLabel indicates the mood label has no value mapping
	ErrUnknownLabel = errors.New("unknown mood label")
	// ErrLabelValueMismatch indicates value and label were both given but disagree
	ErrLabelValueMismatch = errors.New("mood label does not match value")
	// ErrMoodRequired indicates neither a value nor a label was given
	ErrMoodRequired = errors.New("a mood value or label is required")
	// ErrFutureTimestamp indicates the timestamp is too far in the future
	ErrFutureTimestamp = errors.New("timestamp is too far in the future")
)
