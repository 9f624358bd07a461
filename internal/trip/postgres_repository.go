package trip

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
// Locations and route legs are stored as JSONB documents.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL trip repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create persists a new trip.
func (r *PostgresRepository) Create(ctx context.Context, trip *Trip) error {
	locations, err := json.Marshal(trip.Locations)
	if err != nil {
		return fmt.Errorf("encoding locations: %w", err)
	}

	var routeDetails []byte
	if trip.RouteDetails != nil {
		routeDetails, err = json.Marshal(trip.RouteDetails)
		if err != nil {
			return fmt.Errorf("encoding route details: %w", err)
		}
	}

	query := `
		INSERT INTO trips (
			id, user_name, locations, route_details,
			total_distance, total_duration, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.pool.Exec(ctx, query,
		trip.ID,
		trip.User,
		locations,
		routeDetails,
		trip.TotalDistance,
		trip.TotalDuration,
		trip.CreatedAt,
	)
	return err
}

// List retrieves trips matching the filter, newest first.
func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]*Trip, error) {
	query := `
		SELECT
			id, user_name, locations, route_details,
			total_distance, total_duration, created_at
		FROM trips
		WHERE ($1 = '' OR user_name = $1)
		  AND ($2 = '' OR EXISTS (
			SELECT 1 FROM jsonb_array_elements(locations) AS loc
			WHERE loc->>'name' = $2
		  ))
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, filter.User, filter.Location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]*Trip, 0)
	for rows.Next() {
		var (
			trip         Trip
			locations    []byte
			routeDetails []byte
		)

		err := rows.Scan(
			&trip.ID,
			&trip.User,
			&locations,
			&routeDetails,
			&trip.TotalDistance,
			&trip.TotalDuration,
			&trip.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(locations, &trip.Locations); err != nil {
			return nil, fmt.Errorf("decoding locations: %w", err)
		}
		if routeDetails != nil {
			if err := json.Unmarshal(routeDetails, &trip.RouteDetails); err != nil {
				return nil, fmt.Errorf("decoding route details: %w", err)
			}
		}

		trips = append(trips, &trip)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}

// Count returns the total number of stored trips.
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM trips`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a trip by ID.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrTripNotFound
	}

	return nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
