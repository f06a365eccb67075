package service

import (
	"errors"

	"github.com/okian/tagscore/internal/adapters/file"
	"github.com/okian/tagscore/internal/domain/model"
)

// Error kinds surfaced by a scoring run. Callers map them to exit codes.
var (
	ErrMissingFile        = file.ErrMissingFile
	ErrMalformedRecord    = file.ErrMalformedRecord
	ErrUnregisteredPlayer = errors.New("unregistered player")
	ErrUnknownVerbosity   = model.ErrUnknownVerbosity

	// ErrOutOfOrder is returned when session steps are called out of order.
	ErrOutOfOrder = errors.New("session step out of order")
)
