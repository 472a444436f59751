// Package seed populates an empty registry with random users and universities.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"scholar-registry/internal/domain"
	"scholar-registry/internal/repository"
)

const nameLength = 10

// Options controls the size and reproducibility of a seeding run.
type Options struct {
	MaxUsers           int
	UsersPerUniversity int
	// RandSeed makes a run reproducible; zero seeds from the clock.
	RandSeed uint64
}

// Seeder fills empty user storage with generated data.
type Seeder struct {
	users        repository.UserRepository
	universities repository.UniversityRepository
	opts         Options
	logger       *logrus.Logger
}

func New(users repository.UserRepository, universities repository.UniversityRepository, opts Options, logger *logrus.Logger) *Seeder {
	if opts.UsersPerUniversity <= 0 {
		opts.UsersPerUniversity = 1
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Seeder{
		users:        users,
		universities: universities,
		opts:         opts,
		logger:       logger,
	}
}

// Run fills the registry when no user exists yet and returns how many users were created.
// The first draw of the generator picks n in [0, MaxUsers); n-1 users are generated.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	existing, err := s.users.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("check existing users: %w", err)
	}
	if len(existing) > 0 {
		s.logger.WithField("users", len(existing)).Debug("seed skipped, users already present")
		return 0, nil
	}
	if s.opts.MaxUsers <= 0 {
		return 0, nil
	}

	seed := s.opts.RandSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	count := rng.IntN(s.opts.MaxUsers)

	var (
		created    int
		university *domain.University
	)
	for i := 1; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		if university == nil || i%s.opts.UsersPerUniversity == 0 {
			score := rng.IntN(100)
			if university == nil {
				score = 50 + rng.IntN(50)
			}
			university, err = s.universities.Ensure(ctx, randomName(rng), score)
			if err != nil {
				return created, fmt.Errorf("seed university: %w", err)
			}
		}

		user := &domain.User{
			UserName:             randomName(rng),
			UniversityName:       university.Name,
			NumberOfPublications: rng.IntN(10),
		}
		if _, err := s.users.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				continue
			}
			return created, fmt.Errorf("seed user: %w", err)
		}
		created++
	}

	s.logger.WithFields(logrus.Fields{
		"users": created,
		"seed":  seed,
	}).Info("registry seeded")
	return created, nil
}

func randomName(rng *rand.Rand) string {
	b := make([]byte, nameLength)
	for i := range b {
		b[i] = byte('a' + rng.IntN(26))
	}
	return string(b)
}
