package roster

import (
	"fmt"
	"sort"

	"github.com/okian/tagscore/internal/domain/model"
)

// Team owns one side's roster and its score accumulators.
//
// CreditHit is the only path that mutates the accumulators. Team is not safe
// for concurrent use; a match is scored sequentially.
type Team struct {
	name     string
	number   int
	declared int

	// ids in roster order, without duplicates
	order []int
	stats map[int]*model.PlayerStats

	totalScore  int
	maxTagCount int

	dir *Directory
}

// NewTeam builds a team from its roster. The first spec.Declared entries are
// registered in dir under this team's number; further entries are ignored.
func NewTeam(number int, spec model.RosterSpec, dir *Directory) (*Team, error) {
	if number != model.TeamOne && number != model.TeamTwo {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTeamNumber, number)
	}
	if spec.Declared < 0 {
		return nil, fmt.Errorf("%w: declared count %d", ErrMalformedEntry, spec.Declared)
	}
	if len(spec.Entries) < spec.Declared {
		return nil, fmt.Errorf("%w: team %q declared %d, found %d",
			ErrShortRoster, spec.Name, spec.Declared, len(spec.Entries))
	}

	t := &Team{
		name:     spec.Name,
		number:   number,
		declared: spec.Declared,
		order:    make([]int, 0, spec.Declared),
		stats:    make(map[int]*model.PlayerStats, spec.Declared),
		dir:      dir,
	}
	for _, e := range spec.Entries[:spec.Declared] {
		dir.Register(e.ID, e.Name, number)
		if _, seen := t.stats[e.ID]; !seen {
			t.order = append(t.order, e.ID)
		}
		t.stats[e.ID] = &model.PlayerStats{}
	}
	return t, nil
}

// Name returns the team's display name.
func (t *Team) Name() string { return t.name }

// Number returns model.TeamOne or model.TeamTwo.
func (t *Team) Number() int { return t.number }

// Size returns the number of distinct players on the roster.
func (t *Team) Size() int { return len(t.order) }

// Declared returns the player count declared by the roster file.
func (t *Team) Declared() int { return t.declared }

// TotalScore returns the sum of all player scores.
func (t *Team) TotalScore() int { return t.totalScore }

// MaxTagCount returns the highest tag count reached by any player.
func (t *Team) MaxTagCount() int { return t.maxTagCount }

// PlayerIDs returns the roster IDs in roster order.
func (t *Team) PlayerIDs() []int {
	return append([]int(nil), t.order...)
}

// Stats returns a copy of a player's accumulators.
func (t *Team) Stats(id int) (model.PlayerStats, bool) {
	s, ok := t.stats[id]
	if !ok {
		return model.PlayerStats{}, false
	}
	return *s, true
}

// CreditHit adds points and one tag to the player, and points to the team.
func (t *Team) CreditHit(id, points int) error {
	if points < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPoints, points)
	}
	s, ok := t.stats[id]
	if !ok {
		return fmt.Errorf("%w: id %d on team %q", ErrNotOnRoster, id, t.name)
	}

	s.Score += points
	s.Tags++
	t.totalScore += points

	if s.Tags > t.maxTagCount {
		t.maxTagCount = s.Tags
	}
	return nil
}

// RankedPlayerIDs orders the roster by tag count descending, ties by ID
// ascending. It walks every level from MaxTagCount down to zero and collects
// the players on that level, so the result always reflects the current
// accumulators.
func (t *Team) RankedPlayerIDs() []int {
	ranked := make([]int, 0, len(t.order))
	for level := t.maxTagCount; level >= 0; level-- {
		var tied []int
		for id, s := range t.stats {
			if s.Tags == level {
				tied = append(tied, id)
			}
		}
		sort.Ints(tied)
		ranked = append(ranked, tied...)
	}
	return ranked
}

// BestScorers returns the highest individual score and the names of every
// player holding it, ordered by ascending player ID. An empty roster yields
// zero and no names.
func (t *Team) BestScorers() (int, []string, error) {
	if len(t.order) == 0 {
		return 0, nil, nil
	}

	ids := t.PlayerIDs()
	sort.Ints(ids)

	best := -1
	var names []string
	for _, id := range ids {
		score := t.stats[id].Score
		if score < best {
			continue
		}
		p, err := t.dir.Lookup(id)
		if err != nil {
			return 0, nil, err
		}
		if score > best {
			best = score
			names = names[:0]
		}
		names = append(names, p.Name)
	}
	return best, names, nil
}
