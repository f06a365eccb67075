// Package roster holds the player directory and the per-team accumulators.
package roster

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/okian/tagscore/internal/domain/model"
)

// Directory maps player IDs to their name and team for one match.
// It is populated while teams are built and only read afterwards.
type Directory struct {
	players map[int]model.Player
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{players: make(map[int]model.Player)}
}

// Register inserts or replaces the entry for id. A second registration of the
// same id silently wins over the first.
func (d *Directory) Register(id int, name string, team int) {
	d.players[id] = model.Player{ID: id, Name: name, Team: team}
}

// Lookup returns the player registered under id.
// Returns ErrNotFound if the id was never registered.
func (d *Directory) Lookup(id int) (model.Player, error) {
	p, ok := d.players[id]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return p, nil
}

// Len returns the number of registered players.
func (d *Directory) Len() int {
	return len(d.players)
}

// ParseEntry splits a roster line on its first whitespace into the player ID
// and the trimmed remainder as the name.
func ParseEntry(line string) (model.RosterEntry, error) {
	line = strings.TrimSpace(line)
	idField, name := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		idField, name = line[:i], line[i+1:]
	}
	id, err := strconv.Atoi(idField)
	if err != nil {
		return model.RosterEntry{}, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return model.RosterEntry{}, fmt.Errorf("%w: missing name in %q", ErrMalformedEntry, line)
	}
	return model.RosterEntry{ID: id, Name: name}, nil
}
