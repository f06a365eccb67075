package repository

import "github.com/okian/tagscore/internal/domain/model"

// Option applies a configuration option to the HitLedger.
type Option func(*HitLedger)

// WithObserver registers a callback invoked after every appended shot.
func WithObserver(fn func(model.Shot)) Option {
	return func(l *HitLedger) {
		if fn != nil {
			l.observers = append(l.observers, fn)
		}
	}
}
