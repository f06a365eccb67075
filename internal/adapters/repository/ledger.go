package repository

import (
	"fmt"

	"github.com/okian/tagscore/internal/domain/model"
)

// HitLedger is an append-only list of (shooter, target) pairs in replay
// order. Its capacity is the hit count declared by the match file and is
// never exceeded.
type HitLedger struct {
	shots     []model.Shot
	capacity  int
	observers []func(model.Shot)
}

var _ Ledger = (*HitLedger)(nil)

// NewHitLedger creates a ledger that accepts at most capacity shots.
func NewHitLedger(capacity int, opts ...Option) (*HitLedger, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	l := &HitLedger{
		shots:    make([]model.Shot, 0, capacity),
		capacity: capacity,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Append records a shot. Returns ErrLedgerFull once capacity is reached.
func (l *HitLedger) Append(shooterID, targetID int) error {
	if len(l.shots) >= l.capacity {
		return fmt.Errorf("%w: capacity %d", ErrLedgerFull, l.capacity)
	}
	shot := model.Shot{ShooterID: shooterID, TargetID: targetID}
	l.shots = append(l.shots, shot)
	for _, fn := range l.observers {
		fn(shot)
	}
	return nil
}

// Len returns the number of recorded shots.
func (l *HitLedger) Len() int { return len(l.shots) }

// Cap returns the declared capacity.
func (l *HitLedger) Cap() int { return l.capacity }

// At returns the i-th shot. It panics if i is out of range, like a slice.
func (l *HitLedger) At(i int) model.Shot { return l.shots[i] }

// Count scans the whole ledger for shots matching the pair.
func (l *HitLedger) Count(shooterID, targetID int) int {
	n := 0
	for _, s := range l.shots {
		if s.ShooterID == shooterID && s.TargetID == targetID {
			n++
		}
	}
	return n
}
