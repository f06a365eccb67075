package repository

import "errors"

// Sentinel kinds for ledger errors.
var (
	ErrLedgerFull      = errors.New("hit ledger is full")
	ErrInvalidCapacity = errors.New("invalid ledger capacity")
)
