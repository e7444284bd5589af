package service

import (
	"context"
	"sort"

	"country-guess/internal/model"
)

// DefaultLeaderboardSize is the window the leaderboard is truncated to.
const DefaultLeaderboardSize = 20

// LeaderboardService orders completed-game records for display.
type LeaderboardService struct {
	rankings RankingStore
	size     int
}

// NewLeaderboardService creates a new LeaderboardService instance.
func NewLeaderboardService(rankings RankingStore, size int) *LeaderboardService {
	if size <= 0 {
		size = DefaultLeaderboardSize
	}
	return &LeaderboardService{rankings: rankings, size: size}
}

// Top returns the leaderboard window. The full record set is sorted
// before truncation; sorting a pre-truncated slice would surface the
// wrong entries.
func (s *LeaderboardService) Top(ctx context.Context) ([]*model.Ranking, error) {
	recs, err := s.rankings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	SortRankings(recs)

	if len(recs) > s.size {
		recs = recs[:s.size]
	}
	return recs, nil
}

// SortRankings orders records in place by the composite leaderboard key:
// difficulty rank (hardest first), then elapsed time, then attempts, all
// ascending.
func SortRankings(recs []*model.Ranking) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		ra, rb := model.DifficultyRank(a.Difficulty), model.DifficultyRank(b.Difficulty)
		if ra != rb {
			return ra < rb
		}
		if a.TimeSpent != b.TimeSpent {
			return a.TimeSpent < b.TimeSpent
		}
		return a.Attempts < b.Attempts
	})
}
