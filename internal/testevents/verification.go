package testevents

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/okian/tagscore/internal/domain/model"
	"github.com/okian/tagscore/internal/domain/roster"
	"github.com/okian/tagscore/pkg/logger"
)

// ErrMismatch is returned when the engine disagrees with the fixture.
var ErrMismatch = errors.New("engine result mismatch")

// verifyResults checks the engine's teams against the fixture's expectations:
// team totals, every player's accumulators and both rankings.
func verifyResults(ctx context.Context, f *Fixture, teamA, teamB *roster.Team, stats *Stats) error {
	logger.Get().Info(ctx, "verifying results", logger.String("run", f.RunID))

	for i, team := range []*roster.Team{teamA, teamB} {
		if team.TotalScore() != f.Totals[i] {
			return fmt.Errorf("%w: team %q total %d, want %d", ErrMismatch, team.Name(), team.TotalScore(), f.Totals[i])
		}
	}

	for id, want := range f.Expected {
		team := teamA
		if want.Team == model.TeamTwo {
			team = teamB
		}
		got, ok := team.Stats(id)
		if !ok {
			return fmt.Errorf("%w: player %d missing from %q", ErrMismatch, id, team.Name())
		}
		if got.Score != want.Score || got.Tags != want.Tags {
			return fmt.Errorf("%w: player %d has %d points/%d tags, want %d/%d",
				ErrMismatch, id, got.Score, got.Tags, want.Score, want.Tags)
		}
		stats.PlayersChecked++
	}

	for _, pair := range []struct {
		team   *roster.Team
		roster Roster
	}{{teamA, f.TeamA}, {teamB, f.TeamB}} {
		want := expectedRanking(pair.roster, f.Expected)
		if got := pair.team.RankedPlayerIDs(); !slices.Equal(got, want) {
			return fmt.Errorf("%w: %q ranking %v, want %v", ErrMismatch, pair.team.Name(), got, want)
		}
	}

	logger.Get().Info(ctx, "result verification completed", logger.Int("playersChecked", stats.PlayersChecked))
	return nil
}
