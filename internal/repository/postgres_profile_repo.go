package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/saeid-a/CoachAIBack/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresProfileRepository struct {
	db DBTX
}

func NewPostgresProfileRepository(db DBTX) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Put(ctx context.Context, profile models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	query := `
		INSERT INTO profiles (user_id, data)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET data = EXCLUDED.data,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query, profile.UserID, data)
	return err
}

func (r *PostgresProfileRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT data FROM profiles WHERE user_id = $1`

	var data []byte
	if err := r.db.QueryRow(ctx, query, userID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("decode profile %q: %w", userID, err)
	}
	return &profile, nil
}

func (r *PostgresProfileRepository) List(ctx context.Context) (map[string]models.Profile, error) {
	query := `SELECT user_id, data FROM profiles ORDER BY user_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make(map[string]models.Profile)
	for rows.Next() {
		var (
			userID string
			data   []byte
		)
		if err := rows.Scan(&userID, &data); err != nil {
			return nil, err
		}

		var profile models.Profile
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("decode profile %q: %w", userID, err)
		}
		profiles[userID] = profile
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
