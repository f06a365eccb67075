package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/tagscore/internal/testevents"
	"github.com/okian/tagscore/pkg/logger"
)

const defaultTimeout = time.Minute

func main() {
	var (
		outputDir = flag.String("out", ".", "Output directory")
		players   = flag.Int("players", testevents.DefaultPlayersPerTeam, "Players per team")
		hits      = flag.Int("hits", testevents.DefaultHits, "Number of hit events")
		seed      = flag.Int64("seed", 1, "Random seed")
		teamA     = flag.String("team-a", testevents.DefaultTeamAName, "Name of team one")
		teamB     = flag.String("team-b", testevents.DefaultTeamBName, "Name of team two")
		verify    = flag.Bool("verify", false, "Score the written files and check the results")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		testevents.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	config := &testevents.Config{
		OutputDir:      *outputDir,
		TeamAName:      *teamA,
		TeamBName:      *teamB,
		PlayersPerTeam: *players,
		Hits:           *hits,
		Seed:           *seed,
		Verify:         *verify,
	}

	if _, err := testevents.Run(ctx, config); err != nil {
		logger.Get().Error(ctx, "match generation failed", logger.Error(err))
		cancel()
		os.Exit(1)
	}
}
