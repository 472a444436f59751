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

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL,
	username_key TEXT NOT NULL UNIQUE,
	number_of_publications INTEGER NOT NULL DEFAULT 0 CHECK (number_of_publications >= 0),
	university_name TEXT NOT NULL,
	reviewer BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`

const selectUserColumns = `SELECT id, username, number_of_publications, university_name, reviewer, created_at, updated_at FROM users`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUserColumns+` ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.QueryRowContext(ctx, `
INSERT INTO users (username, username_key, number_of_publications, university_name, reviewer, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`,
		user.UserName,
		repository.NameKey(user.UserName),
		user.NumberOfPublications,
		user.UniversityName,
		user.Reviewer,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", user.UserName, repository.ErrConflict)
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return user.ID, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, selectUserColumns+` WHERE id = $1`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, selectUserColumns+` WHERE username_key = $1`, repository.NameKey(username))
}

func (r *UserRepository) SetReviewer(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := scanUser(r.db.QueryRowContext(ctx, `
UPDATE users SET reviewer = TRUE, updated_at = $2
WHERE id = $1
RETURNING id, username, number_of_publications, university_name, reviewer, created_at, updated_at`,
		id,
		time.Now().UTC(),
	), &user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("set reviewer for user %d: %w", id, repository.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, arg), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func scanUser(row interface {
	Scan(dest ...any) error
}, user *domain.User) error {
	err := row.Scan(
		&user.ID,
		&user.UserName,
		&user.NumberOfPublications,
		&user.UniversityName,
		&user.Reviewer,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("scan user: %w", err)
	}
	return err
}
