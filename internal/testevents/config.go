package testevents

import "time"

// Config holds configuration for a synthetic match run.
type Config struct {
	OutputDir      string // directory for the generated files
	TeamAName      string // display name of team one
	TeamBName      string // display name of team two
	PlayersPerTeam int    // roster size of each team
	Hits           int    // number of hit events
	Seed           int64  // seed for reproducible matches
	Verify         bool   // replay the files and check the engine's results
}

// Fixture is a generated match together with the results it must produce.
type Fixture struct {
	RunID  string
	TeamA  Roster
	TeamB  Roster
	Hits   []Hit
	Totals [2]int // expected team totals, team one first

	// expected accumulators by player id
	Expected map[int]PlayerResult
}

// Roster is a generated team.
type Roster struct {
	Name    string
	Players []Player
}

// Player is a generated roster line.
type Player struct {
	ID   int
	Name string
}

// Hit is a generated match line.
type Hit struct {
	Shooter  int
	Target   int
	AtMillis int
	Location int
}

// PlayerResult is the expected score and tag count of one player.
type PlayerResult struct {
	Team  int
	Score int
	Tags  int
}

// Paths locates the files written for a fixture.
type Paths struct {
	TeamA string
	TeamB string
	Match string
}

// Stats holds run statistics.
type Stats struct {
	PlayersGenerated int
	HitsGenerated    int
	PlayersChecked   int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
