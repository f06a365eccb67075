// Package repository keeps the hit ledger recorded during replay.
package repository

import "github.com/okian/tagscore/internal/domain/model"

// Ledger is the read side of the hit ledger, used by report assembly.
type Ledger interface {
	// Len returns the number of recorded shots.
	Len() int
	// At returns the i-th shot in replay order.
	At(i int) model.Shot
	// Count returns how many shots match (shooter, target) exactly.
	Count(shooterID, targetID int) int
}
