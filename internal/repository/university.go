package repository

import (
	"context"

	"scholar-registry/internal/domain"
)

// UniversityRepository defines persistence operations for University entities.
type UniversityRepository interface {
	Init(ctx context.Context) error
	List(ctx context.Context) ([]domain.University, error)
	Create(ctx context.Context, university *domain.University) (int64, error)
	GetByName(ctx context.Context, name string) (*domain.University, error)
	// Ensure returns the university with the given name, inserting it with
	// defaultScore when it does not exist yet.
	Ensure(ctx context.Context, name string, defaultScore int) (*domain.University, error)
}
