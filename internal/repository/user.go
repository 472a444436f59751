package repository

import (
	"context"

	"scholar-registry/internal/domain"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks scholar-registry/internal/repository UniversityRepository,UserRepository

// UserRepository defines persistence operations for User entities.
//
// Lookups return a nil user and a nil error when no row matches.
type UserRepository interface {
	Init(ctx context.Context) error
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	SetReviewer(ctx context.Context, id int64) (*domain.User, error)
}
