// Package report turns the final match state into report lines.
//
// Assembly is pure: it reads team accumulators, the hit ledger and the player
// directory and returns lines without a trailing newline. Writing them out is
// the caller's job.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okian/tagscore/internal/domain/model"
)

// ErrUnknownVerbosity is returned when no report format matches.
var ErrUnknownVerbosity = model.ErrUnknownVerbosity

// DrawLine is the last line of a report when both totals are equal.
const DrawLine = "The match was a draw!"

// Side is the team state a report reads.
type Side interface {
	Name() string
	TotalScore() int
	RankedPlayerIDs() []int
	Stats(id int) (model.PlayerStats, bool)
	BestScorers() (int, []string, error)
}

// Names resolves player IDs to directory entries.
type Names interface {
	Lookup(id int) (model.Player, error)
}

// Shots counts ledger entries for a shooter/target pair.
type Shots interface {
	Count(shooterID, targetID int) int
}

// Assemble builds the report for the given verbosity. Teams are printed in
// alphabetical order of their names; on equal names b comes first.
func Assemble(a, b Side, shots Shots, names Names, v model.Verbosity) ([]string, error) {
	first, second := b, a
	if a.Name() < b.Name() {
		first, second = a, b
	}

	var (
		lines []string
		err   error
	)
	switch v {
	case model.VerbosityLow:
		lines = []string{TeamScoreLine(first), TeamScoreLine(second)}
	case model.VerbosityMedium:
		lines, err = mediumBody(first, second, names)
	case model.VerbosityHigh:
		lines, err = highBody(first, second, shots, names)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVerbosity, v)
	}
	if err != nil {
		return nil, err
	}
	return append(lines, WinnerLine(a, b)), nil
}

// WinnerLine names the team with the strictly greater total, or reports a draw.
func WinnerLine(a, b Side) string {
	switch {
	case a.TotalScore() > b.TotalScore():
		return "Overall Winners: " + a.Name()
	case b.TotalScore() > a.TotalScore():
		return "Overall Winners: " + b.Name()
	default:
		return DrawLine
	}
}

// TeamScoreLine formats "<team>: <total> points.".
func TeamScoreLine(s Side) string {
	return fmt.Sprintf("%s: %d points.", s.Name(), s.TotalScore())
}

func mediumBody(first, second Side, names Names) ([]string, error) {
	var lines []string
	for _, side := range []Side{first, second} {
		block, err := tagCountBlock(side, names)
		if err != nil {
			return nil, err
		}
		lines = append(lines, block...)
	}
	return lines, nil
}

func tagCountBlock(side Side, names Names) ([]string, error) {
	lines := []string{side.Name()}
	for _, id := range side.RankedPlayerIDs() {
		name, stats, err := resolve(side, names, id)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("\t%s had a total of %d %s.", name, stats.Tags, plural(stats.Tags, "tag", "tags")))
	}
	lines = append(lines, "")

	best, scorers, err := side.BestScorers()
	if err != nil {
		return nil, fmt.Errorf("best scorers for %q: %w", side.Name(), err)
	}
	lines = append(lines,
		fmt.Sprintf("Best score from %s: %s (%d points)", side.Name(), strings.Join(scorers, " and "), best),
		TeamScoreLine(side),
	)
	return lines, nil
}

func highBody(first, second Side, shots Shots, names Names) ([]string, error) {
	lines, err := matrixBlock(first, second, shots, names)
	if err != nil {
		return nil, err
	}
	lines = append(lines, "")
	rest, err := matrixBlock(second, first, shots, names)
	if err != nil {
		return nil, err
	}
	return append(lines, rest...), nil
}

// matrixBlock prints how often each shooter tagged each target, shooters and
// targets both in ranked order. Pairs with no shots still get a line.
func matrixBlock(shooters, targets Side, shots Shots, names Names) ([]string, error) {
	lines := []string{shooters.Name()}
	targetIDs := targets.RankedPlayerIDs()

	for _, sid := range shooters.RankedPlayerIDs() {
		shooter, stats, err := resolve(shooters, names, sid)
		if err != nil {
			return nil, err
		}
		for _, tid := range targetIDs {
			target, err := names.Lookup(tid)
			if err != nil {
				return nil, err
			}
			lines = append(lines, fmt.Sprintf("\t%s tagged %s %d times.", shooter, target.Name, shots.Count(sid, tid)))
		}
		lines = append(lines, fmt.Sprintf("\t%s had a total of %d points and %d %s.",
			shooter, stats.Score, stats.Tags, plural(stats.Tags, "tag", "tags")))
	}
	return append(lines, "\t"+TeamScoreLine(shooters)), nil
}

var errMissingStats = errors.New("ranked player has no stats")

func resolve(side Side, names Names, id int) (string, model.PlayerStats, error) {
	p, err := names.Lookup(id)
	if err != nil {
		return "", model.PlayerStats{}, err
	}
	stats, ok := side.Stats(id)
	if !ok {
		return "", model.PlayerStats{}, fmt.Errorf("%w: id %d on %q", errMissingStats, id, side.Name())
	}
	return p.Name, stats, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
