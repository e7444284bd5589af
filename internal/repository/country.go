// Package repository provides data access layer implementations.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"country-guess/internal/model"
)

// Common errors for repository operations.
var (
	ErrCountryNotFound = errors.New("country not found")
)

// CountryRepository handles country catalog persistence.
type CountryRepository struct {
	pool *pgxpool.Pool
}

// NewCountryRepository creates a new CountryRepository instance.
func NewCountryRepository(pool *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{pool: pool}
}

// Seed populates the catalog from the static country list. It is a no-op
// when the table already has rows, so startup stays idempotent.
func (r *CountryRepository) Seed(ctx context.Context, countries []model.Country) error {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM countries`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count countries: %w", err)
	}
	if count > 0 {
		log.Info().Int("countries", count).Msg("Catalog already populated")
		return nil
	}

	const query = `
		INSERT INTO countries (name, initial_letter, flag_code, difficulty)
		VALUES ($1, $2, $3, $4)
	`
	for _, c := range countries {
		if _, err := r.pool.Exec(ctx, query, c.Name, c.InitialLetter, c.FlagCode, c.Difficulty); err != nil {
			return fmt.Errorf("failed to seed country %q: %w", c.Name, err)
		}
	}

	log.Info().Int("countries", len(countries)).Msg("Catalog seeded")
	return nil
}

// GetByID retrieves a country by id.
// Returns ErrCountryNotFound if the country does not exist.
func (r *CountryRepository) GetByID(ctx context.Context, id int64) (*model.Country, error) {
	const query = `
		SELECT id, name, initial_letter, flag_code, difficulty
		FROM countries
		WHERE id = $1
	`

	var c model.Country
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.InitialLetter,
		&c.FlagCode,
		&c.Difficulty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCountryNotFound
		}
		return nil, fmt.Errorf("failed to get country: %w", err)
	}

	return &c, nil
}

// ListByDifficulties retrieves all countries whose difficulty is in
// tiers. A nil or empty tiers slice returns the whole catalog.
func (r *CountryRepository) ListByDifficulties(ctx context.Context, tiers []string) ([]model.Country, error) {
	const filtered = `
		SELECT id, name, initial_letter, flag_code, difficulty
		FROM countries
		WHERE difficulty = ANY($1)
		ORDER BY id
	`
	const all = `
		SELECT id, name, initial_letter, flag_code, difficulty
		FROM countries
		ORDER BY id
	`

	var (
		rows pgx.Rows
		err  error
	)
	if len(tiers) == 0 {
		rows, err = r.pool.Query(ctx, all)
	} else {
		rows, err = r.pool.Query(ctx, filtered, tiers)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer rows.Close()

	var countries []model.Country
	for rows.Next() {
		var c model.Country
		err := rows.Scan(&c.ID, &c.Name, &c.InitialLetter, &c.FlagCode, &c.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating countries: %w", err)
	}

	return countries, nil
}
