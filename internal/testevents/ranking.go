package testevents

import "sort"

// expectedRanking orders a roster by tags desc, then id asc, using a plain
// comparator sort. The engine reaches the same order by scanning tag levels,
// so the two are compared during verification.
func expectedRanking(r Roster, expected map[int]PlayerResult) []int {
	ids := make([]int, len(r.Players))
	for i, p := range r.Players {
		ids[i] = p.ID
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := expected[ids[i]], expected[ids[j]]
		if a.Tags != b.Tags {
			return a.Tags > b.Tags // more tags ranks earlier
		}
		return ids[i] < ids[j] // tie-breaker by id asc
	})
	return ids
}
