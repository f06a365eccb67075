// Package model contains domain models passed between layers.
package model

import "time"

// Team numbers. Every player belongs to exactly one of them.
const (
	TeamOne = 1
	TeamTwo = 2
)

// Player is a directory entry. IDs come from the roster files and are unique
// across both teams.
type Player struct {
	ID   int
	Name string
	Team int // TeamOne or TeamTwo
}

// HitEvent is one parsed line of a match file.
type HitEvent struct {
	ShooterID int           // player credited with the tag
	TargetID  int           // player that was tagged
	At        time.Duration // game clock; informational only
	Location  int           // hit-location code, see scoring.HitValueTable
}

// Shot is the part of a HitEvent kept after replay.
type Shot struct {
	ShooterID int
	TargetID  int
}

// PlayerStats holds a player's accumulators.
type PlayerStats struct {
	Score int
	Tags  int
}

// RosterEntry is one "<id> <name>" roster line.
type RosterEntry struct {
	ID   int
	Name string
}

// RosterSpec describes a team as read from its roster file.
type RosterSpec struct {
	Name     string
	Declared int // declared player count; entries past it are ignored
	Entries  []RosterEntry
}

// MatchSpec describes a match file: the declared hit count and the events
// in input order.
type MatchSpec struct {
	Declared int
	Events   []HitEvent
}
