package model

import (
	"errors"
	"fmt"
	"strings"
)

// Verbosity selects the report format.
type Verbosity int

// Report formats.
const (
	VerbosityLow Verbosity = iota + 1
	VerbosityMedium
	VerbosityHigh
)

// ErrUnknownVerbosity is returned for flags other than l, m or h.
var ErrUnknownVerbosity = errors.New("unknown verbosity")

// ParseVerbosity accepts "-l", "-m", "-h" and the bare letters. Only the
// letter is significant, so "-low" is read as low.
func ParseVerbosity(flag string) (Verbosity, error) {
	s := strings.TrimPrefix(strings.TrimSpace(flag), "-")
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVerbosity, flag)
	}
	switch s[0] {
	case 'l':
		return VerbosityLow, nil
	case 'm':
		return VerbosityMedium, nil
	case 'h':
		return VerbosityHigh, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVerbosity, flag)
	}
}

// String returns the lowercase name of v.
func (v Verbosity) String() string {
	switch v {
	case VerbosityLow:
		return "low"
	case VerbosityMedium:
		return "medium"
	case VerbosityHigh:
		return "high"
	default:
		return "unknown"
	}
}
