package testevents

import (
	"context"
	"fmt"
	"time"

	app "github.com/okian/tagscore/internal/app"
	"github.com/okian/tagscore/pkg/logger"
)

// Run generates a match, writes it to config.OutputDir and, when
// config.Verify is set, scores the written files and checks the outcome.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting match generation",
		logger.String("outputDir", config.OutputDir),
		logger.Int("playersPerTeam", config.PlayersPerTeam),
		logger.Int("hits", config.Hits),
		logger.Any("seed", config.Seed),
		logger.Any("verify", config.Verify))

	// Step 1: Generate the match
	fixture, err := Generate(ctx, config, stats)
	if err != nil {
		return nil, fmt.Errorf("match generation failed: %w", err)
	}

	// Step 2: Write roster and match files
	paths, err := WriteFixture(config.OutputDir, fixture)
	if err != nil {
		return nil, fmt.Errorf("writing match files failed: %w", err)
	}
	logger.Get().Info(ctx, "match files written",
		logger.String("teamA", paths.TeamA),
		logger.String("teamB", paths.TeamB),
		logger.String("match", paths.Match))

	// Step 3: Score the files exactly as the CLI would
	if config.Verify {
		if err := verifyFiles(ctx, paths, fixture, stats); err != nil {
			return nil, err
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	logger.Get().Info(ctx, "match generation finished", logger.String("duration", stats.Duration.String()))
	return stats, nil
}

func verifyFiles(ctx context.Context, paths Paths, fixture *Fixture, stats *Stats) error {
	in, err := app.LoadInputs(paths.TeamA, paths.TeamB, paths.Match)
	if err != nil {
		return fmt.Errorf("reading generated files failed: %w", err)
	}

	session := app.New(app.WithLogger(logger.Get()))
	if err := session.BuildTeams(ctx, in.TeamA, in.TeamB); err != nil {
		return fmt.Errorf("building generated teams failed: %w", err)
	}
	if err := session.Replay(ctx, in.Match); err != nil {
		return fmt.Errorf("replaying generated match failed: %w", err)
	}

	teamA, teamB := session.Teams()
	if err := verifyResults(ctx, fixture, teamA, teamB, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}
	return nil
}
