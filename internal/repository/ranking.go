package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"country-guess/internal/model"
)

// RankingRepository handles the append-only leaderboard records.
type RankingRepository struct {
	pool *pgxpool.Pool
}

// NewRankingRepository creates a new RankingRepository instance.
func NewRankingRepository(pool *pgxpool.Pool) *RankingRepository {
	return &RankingRepository{pool: pool}
}

// Create appends one ranking record and returns the stored row.
func (r *RankingRepository) Create(ctx context.Context, rec *model.Ranking) (*model.Ranking, error) {
	const query = `
		INSERT INTO rankings (player_name, country_name, time_spent, attempts, difficulty, city, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, player_name, country_name, time_spent, attempts, difficulty, created_at, city
	`

	var stored model.Ranking
	err := r.pool.QueryRow(ctx, query,
		rec.PlayerName,
		rec.CountryName,
		rec.TimeSpent,
		rec.Attempts,
		rec.Difficulty,
		rec.City,
	).Scan(
		&stored.ID,
		&stored.PlayerName,
		&stored.CountryName,
		&stored.TimeSpent,
		&stored.Attempts,
		&stored.Difficulty,
		&stored.CreatedAt,
		&stored.City,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ranking: %w", err)
	}

	return &stored, nil
}

// ListAll retrieves every ranking record. Ordering is applied by the
// leaderboard service over the full set, not in SQL, because the
// difficulty ordering is not lexicographic.
func (r *RankingRepository) ListAll(ctx context.Context) ([]*model.Ranking, error) {
	const query = `
		SELECT id, player_name, country_name, time_spent, attempts, difficulty, created_at, city
		FROM rankings
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rankings: %w", err)
	}
	defer rows.Close()

	var rankings []*model.Ranking
	for rows.Next() {
		var rec model.Ranking
		err := rows.Scan(
			&rec.ID,
			&rec.PlayerName,
			&rec.CountryName,
			&rec.TimeSpent,
			&rec.Attempts,
			&rec.Difficulty,
			&rec.CreatedAt,
			&rec.City,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ranking: %w", err)
		}
		rankings = append(rankings, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rankings: %w", err)
	}

	return rankings, nil
}
