package testevents

import "time"

// File names written into Config.OutputDir.
const (
	TeamAFile = "team_a.txt"
	TeamBFile = "team_b.txt"
	MatchFile = "match.txt"
)

// Generation defaults.
const (
	DefaultPlayersPerTeam = 6
	DefaultHits           = 60
	DefaultTeamAName      = "Red"
	DefaultTeamBName      = "Blue"

	// firstPlayerID is the lowest generated id; ids are unique across teams.
	firstPlayerID = 100

	// maxGapMillis bounds the game-clock gap between consecutive hits.
	maxGapMillis = 5 * time.Second / time.Millisecond
)
