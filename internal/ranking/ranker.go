// Package ranking assigns leaderboard ranks from total points.
package ranking

import (
	"slices"
	"sort"

	"octofit/internal/models"
)

// Rank returns a copy of entries sorted by total points, highest first,
// with Rank set to the 1-based position. Ties keep their input order and
// still get distinct ranks.
func Rank(entries []models.Leaderboard) []models.Leaderboard {
	ranked := slices.Clone(entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPoints > ranked[j].TotalPoints
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// IsConsistent reports whether the stored ranks are a dense 1..N sequence
// that orders the entries by total points, highest first.
func IsConsistent(entries []models.Leaderboard) bool {
	byRank := slices.Clone(entries)
	sort.Slice(byRank, func(i, j int) bool { return byRank[i].Rank < byRank[j].Rank })
	for i, entry := range byRank {
		if entry.Rank != i+1 {
			return false
		}
		if i > 0 && byRank[i-1].TotalPoints < entry.TotalPoints {
			return false
		}
	}
	return true
}

// Changed lists the entries of ranked whose rank differs from the rank
// stored in before, matched by id.
func Changed(before, ranked []models.Leaderboard) []models.Leaderboard {
	stored := make(map[string]int, len(before))
	for _, entry := range before {
		stored[entry.ID] = entry.Rank
	}
	var changed []models.Leaderboard
	for _, entry := range ranked {
		if rank, ok := stored[entry.ID]; !ok || rank != entry.Rank {
			changed = append(changed, entry)
		}
	}
	return changed
}
