package service

import (
	"context"
	"errors"
	"fmt"

	"scholar-registry/internal/domain"
	"scholar-registry/internal/metrics"
	"scholar-registry/internal/repository"
)

var (
	// ErrUserAlreadyRegistered is returned when registering a user name that is taken.
	ErrUserAlreadyRegistered = errors.New("user already registered")
	// ErrUserNotFound indicates that no user exists for the requested id.
	ErrUserNotFound = errors.New("user not found")
)

// RegisterUserInput carries the fields accepted when registering a user.
type RegisterUserInput struct {
	UserName             string
	UniversityName       string
	NumberOfPublications int
}

//go:generate mockgen -destination=mocks/mocks.go -package=mocks scholar-registry/internal/service ExportService,UniversityService,UserService

// UserService describes user registration and reviewer invitation.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	InviteReviewer(ctx context.Context, userID int64) (bool, error)
}

type userService struct {
	users                  repository.UserRepository
	universities           repository.UniversityRepository
	defaultUniversityScore int
	metrics                *metrics.Metrics
}

// NewUserService builds a UserService. Universities referenced by a new user that
// do not exist yet are created with defaultUniversityScore. m may be nil.
func NewUserService(users repository.UserRepository, universities repository.UniversityRepository, defaultUniversityScore int, m *metrics.Metrics) UserService {
	return &userService{
		users:                  users,
		universities:           universities,
		defaultUniversityScore: defaultUniversityScore,
		metrics:                m,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	existing, err := s.users.GetByUsername(ctx, input.UserName)
	if err != nil {
		s.metrics.IncRegistration(metrics.ResultError)
		return nil, err
	}
	if existing != nil {
		s.metrics.IncRegistration(metrics.ResultDuplicate)
		return nil, ErrUserAlreadyRegistered
	}

	if _, err := s.universities.Ensure(ctx, input.UniversityName, s.defaultUniversityScore); err != nil {
		s.metrics.IncRegistration(metrics.ResultError)
		return nil, err
	}

	user := &domain.User{
		UserName:             input.UserName,
		UniversityName:       input.UniversityName,
		NumberOfPublications: input.NumberOfPublications,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			s.metrics.IncRegistration(metrics.ResultDuplicate)
			return nil, ErrUserAlreadyRegistered
		}
		s.metrics.IncRegistration(metrics.ResultError)
		return nil, err
	}

	s.metrics.IncRegistration(metrics.ResultCreated)
	return user, nil
}

func (s *userService) InviteReviewer(ctx context.Context, userID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.metrics.IncInvitation(metrics.ResultError)
		return false, err
	}
	if user == nil {
		s.metrics.IncInvitation(metrics.ResultNotFound)
		return false, ErrUserNotFound
	}

	university, err := s.universities.GetByName(ctx, user.UniversityName)
	if err != nil {
		s.metrics.IncInvitation(metrics.ResultError)
		return false, err
	}

	if !user.QualifiesAsReviewer(university) {
		s.metrics.IncInvitation(metrics.ResultRefused)
		return false, nil
	}

	if _, err := s.users.SetReviewer(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.metrics.IncInvitation(metrics.ResultNotFound)
			return false, ErrUserNotFound
		}
		s.metrics.IncInvitation(metrics.ResultError)
		return false, fmt.Errorf("promote reviewer: %w", err)
	}

	s.metrics.IncInvitation(metrics.ResultAccepted)
	return true, nil
}
