package testevents

import (
	"os"
)

// ShowHelp prints usage information for the match generator.
func ShowHelp() {
	os.Stdout.WriteString(`Laser Tag Match Generator
=========================

Writes two roster files and a match file with random hits, suitable as
input for tagscore.

Usage:
  go run ./cmd/gen-match [options]

Options:
  -out string
        Output directory (default ".")
  -players int
        Players per team (default 6)
  -hits int
        Number of hit events (default 60)
  -seed int
        Random seed; the same seed writes the same match (default 1)
  -team-a string
        Name of team one (default "Red")
  -team-b string
        Name of team two (default "Blue")
  -verify
        Score the written files and check the results
  -help
        Show this help message

Examples:
  # Generate a default match into ./fixtures
  go run ./cmd/gen-match -out fixtures

  # Larger match, verified against the engine
  go run ./cmd/gen-match -out fixtures -players 12 -hits 500 -verify
`)
}
