package testevents

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/okian/tagscore/internal/adapters/file"
)

// File permission constants.
const (
	directoryPermission = 0o750
)

// WriteFixture writes both rosters and the match file into dir.
func WriteFixture(dir string, f *Fixture) (Paths, error) {
	if err := os.MkdirAll(dir, directoryPermission); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}
	paths := Paths{
		TeamA: filepath.Join(dir, TeamAFile),
		TeamB: filepath.Join(dir, TeamBFile),
		Match: filepath.Join(dir, MatchFile),
	}

	if err := file.WriteReport(paths.TeamA, rosterLines(f.TeamA)); err != nil {
		return Paths{}, err
	}
	if err := file.WriteReport(paths.TeamB, rosterLines(f.TeamB)); err != nil {
		return Paths{}, err
	}
	if err := file.WriteReport(paths.Match, matchLines(f.Hits)); err != nil {
		return Paths{}, err
	}
	return paths, nil
}

func rosterLines(r Roster) []string {
	lines := []string{r.Name, strconv.Itoa(len(r.Players))}
	for _, p := range r.Players {
		lines = append(lines, strconv.Itoa(p.ID)+" "+p.Name)
	}
	return lines
}

func matchLines(hits []Hit) []string {
	lines := []string{strconv.Itoa(len(hits))}
	for _, h := range hits {
		lines = append(lines, strings.Join([]string{
			strconv.Itoa(h.Shooter),
			strconv.Itoa(h.Target),
			strconv.Itoa(h.AtMillis),
			strconv.Itoa(h.Location),
		}, " "))
	}
	return lines
}
