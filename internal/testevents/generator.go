package testevents

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/okian/tagscore/internal/domain/model"
	"github.com/okian/tagscore/internal/domain/scoring"
	"github.com/okian/tagscore/pkg/logger"
)

// ErrInvalidConfig is returned for configs that cannot produce a match.
var ErrInvalidConfig = errors.New("invalid generator config")

var callsigns = []string{
	"Ace", "Blaze", "Cobra", "Dash", "Echo", "Flint", "Ghost", "Hawk",
	"Iris", "Jinx", "Kite", "Lynx", "Moss", "Nova", "Onyx", "Pike",
}

// Generate builds a random match. Every shooter tags a player of the other
// team. The same seed always yields the same fixture apart from RunID.
func Generate(ctx context.Context, config *Config, stats *Stats) (*Fixture, error) {
	if config.PlayersPerTeam <= 0 || config.Hits < 0 {
		return nil, fmt.Errorf("%w: players=%d hits=%d", ErrInvalidConfig, config.PlayersPerTeam, config.Hits)
	}

	rng := rand.New(rand.NewSource(config.Seed)) //nolint:gosec // reproducible fixtures
	values := scoring.NewHitValueTable()
	codes := values.Codes()

	f := &Fixture{
		RunID:    uuid.NewString(),
		TeamA:    Roster{Name: config.TeamAName},
		TeamB:    Roster{Name: config.TeamBName},
		Expected: make(map[int]PlayerResult, 2*config.PlayersPerTeam),
	}

	// Shuffle ids so roster order differs from id order.
	ids := rng.Perm(2 * config.PlayersPerTeam)
	for i, p := range ids {
		id := firstPlayerID + p
		player := Player{ID: id, Name: fmt.Sprintf("%s-%d", callsigns[p%len(callsigns)], id)}
		team := model.TeamOne
		if i < config.PlayersPerTeam {
			f.TeamA.Players = append(f.TeamA.Players, player)
		} else {
			team = model.TeamTwo
			f.TeamB.Players = append(f.TeamB.Players, player)
		}
		f.Expected[id] = PlayerResult{Team: team}
	}

	clock := 0
	for i := 0; i < config.Hits; i++ {
		shooters, targets := f.TeamA.Players, f.TeamB.Players
		if rng.Intn(2) == 1 {
			shooters, targets = targets, shooters
		}
		shooter := shooters[rng.Intn(len(shooters))]
		target := targets[rng.Intn(len(targets))]
		location := codes[rng.Intn(len(codes))]
		clock += 1 + rng.Intn(int(maxGapMillis))

		points, err := values.ValueOf(location)
		if err != nil {
			return nil, err
		}
		res := f.Expected[shooter.ID]
		res.Score += points
		res.Tags++
		f.Expected[shooter.ID] = res
		f.Totals[res.Team-1] += points

		f.Hits = append(f.Hits, Hit{Shooter: shooter.ID, Target: target.ID, AtMillis: clock, Location: location})
	}

	stats.PlayersGenerated = len(f.Expected)
	stats.HitsGenerated = len(f.Hits)
	logger.Get().Info(ctx, "generated match",
		logger.String("run", f.RunID),
		logger.Int("players", stats.PlayersGenerated),
		logger.Int("hits", stats.HitsGenerated),
	)
	return f, nil
}
