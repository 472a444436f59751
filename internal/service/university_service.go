package service

import (
	"context"
	"errors"

	"scholar-registry/internal/domain"
	"scholar-registry/internal/repository"
)

var (
	// ErrUniversityAlreadyExists is returned when adding a university whose name is taken.
	ErrUniversityAlreadyExists = errors.New("university already exists")
	// ErrUniversityNotFound indicates that no university has the requested name.
	ErrUniversityNotFound = errors.New("university not found")
)

// UniversityService exposes university bookkeeping.
type UniversityService interface {
	ListUniversities(ctx context.Context) ([]domain.University, error)
	GetUniversity(ctx context.Context, name string) (*domain.University, error)
	AddUniversity(ctx context.Context, name string, score int) (*domain.University, error)
}

type universityService struct {
	universities repository.UniversityRepository
}

func NewUniversityService(universities repository.UniversityRepository) UniversityService {
	return &universityService{universities: universities}
}

func (s *universityService) ListUniversities(ctx context.Context) ([]domain.University, error) {
	return s.universities.List(ctx)
}

func (s *universityService) GetUniversity(ctx context.Context, name string) (*domain.University, error) {
	university, err := s.universities.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if university == nil {
		return nil, ErrUniversityNotFound
	}
	return university, nil
}

func (s *universityService) AddUniversity(ctx context.Context, name string, score int) (*domain.University, error) {
	university := &domain.University{Name: name, Score: score}
	if _, err := s.universities.Create(ctx, university); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUniversityAlreadyExists
		}
		return nil, err
	}
	return university, nil
}
