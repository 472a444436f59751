package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"scholar-registry/internal/domain"
	"scholar-registry/internal/repository"
)

const createUniversitiesTable = `
CREATE TABLE IF NOT EXISTS universities (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	name_key TEXT NOT NULL UNIQUE,
	score INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`

type UniversityRepository struct {
	db *sql.DB
}

func NewUniversityRepository(db *sql.DB) repository.UniversityRepository {
	return &UniversityRepository{db: db}
}

func (r *UniversityRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUniversitiesTable); err != nil {
		return fmt.Errorf("create universities table: %w", err)
	}
	return nil
}

func (r *UniversityRepository) List(ctx context.Context) ([]domain.University, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, score, created_at FROM universities ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query universities: %w", err)
	}
	defer rows.Close()

	universities := make([]domain.University, 0)
	for rows.Next() {
		var u domain.University
		if err := rows.Scan(&u.ID, &u.Name, &u.Score, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan university: %w", err)
		}
		universities = append(universities, u)
	}

	return universities, rows.Err()
}

func (r *UniversityRepository) Create(ctx context.Context, university *domain.University) (int64, error) {
	university.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowContext(ctx, `
INSERT INTO universities (name, name_key, score, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`,
		university.Name,
		repository.NameKey(university.Name),
		university.Score,
		university.CreatedAt,
	).Scan(&university.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert university %q: %w", university.Name, repository.ErrConflict)
		}
		return 0, fmt.Errorf("insert university: %w", err)
	}
	return university.ID, nil
}

func (r *UniversityRepository) GetByName(ctx context.Context, name string) (*domain.University, error) {
	var u domain.University
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, score, created_at
FROM universities
WHERE name_key = $1`,
		repository.NameKey(name),
	).Scan(&u.ID, &u.Name, &u.Score, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan university: %w", err)
	}
	return &u, nil
}

func (r *UniversityRepository) Ensure(ctx context.Context, name string, defaultScore int) (*domain.University, error) {
	if _, err := r.db.ExecContext(ctx, `
INSERT INTO universities (name, name_key, score, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT DO NOTHING`,
		name,
		repository.NameKey(name),
		defaultScore,
		time.Now().UTC(),
	); err != nil {
		return nil, fmt.Errorf("ensure university: %w", err)
	}

	university, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if university == nil {
		return nil, fmt.Errorf("ensure university %q: not visible after insert", name)
	}
	return university, nil
}
