//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"scholar-registry/internal/domain"
	"scholar-registry/internal/repository"
	"scholar-registry/internal/repository/postgres"
)

type PostgresRepositorySuite struct {
	suite.Suite
	ctx          context.Context
	container    *tcpostgres.PostgresContainer
	db           *sql.DB
	users        repository.UserRepository
	universities repository.UniversityRepository
}

func TestPostgresRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresRepositorySuite))
}

func (s *PostgresRepositorySuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("scholar"),
		tcpostgres.WithUsername("scholar"),
		tcpostgres.WithPassword("scholar"),
		tcpostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = postgres.Open(s.ctx, dsn)
	s.Require().NoError(err)

	s.users = postgres.NewUserRepository(s.db)
	s.universities = postgres.NewUniversityRepository(s.db)
	s.Require().NoError(s.users.Init(s.ctx))
	s.Require().NoError(s.universities.Init(s.ctx))
}

func (s *PostgresRepositorySuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		s.NoError(testcontainers.TerminateContainer(s.container))
	}
}

func (s *PostgresRepositorySuite) SetupTest() {
	_, err := s.db.ExecContext(s.ctx, `TRUNCATE users, universities RESTART IDENTITY`)
	s.Require().NoError(err)
}

func (s *PostgresRepositorySuite) TestUserLifecycle() {
	users, err := s.users.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)

	alice := &domain.User{UserName: "Alice", UniversityName: "MIT", NumberOfPublications: 5}
	id, err := s.users.Create(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(int64(1), id)

	found, err := s.users.GetByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(alice.ID, found.ID)

	missing, err := s.users.GetByID(s.ctx, 999)
	s.Require().NoError(err)
	s.Nil(missing)

	updated, err := s.users.SetReviewer(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.True(updated.Reviewer)

	_, err = s.users.SetReviewer(s.ctx, 999)
	s.Require().ErrorIs(err, repository.ErrNotFound)

	_, err = s.users.Create(s.ctx, &domain.User{UserName: "ALICE", UniversityName: "MIT"})
	s.Require().ErrorIs(err, repository.ErrConflict)
}

func (s *PostgresRepositorySuite) TestNonASCIINamesIgnoreCase() {
	_, err := s.users.Create(s.ctx, &domain.User{UserName: "Émile", UniversityName: "Sorbonne", NumberOfPublications: 2})
	s.Require().NoError(err)

	_, err = s.users.Create(s.ctx, &domain.User{UserName: "émile", UniversityName: "Sorbonne"})
	s.Require().ErrorIs(err, repository.ErrConflict)

	found, err := s.users.GetByUsername(s.ctx, "ÉMILE")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("Émile", found.UserName)

	ensured, err := s.universities.Ensure(s.ctx, "Ölands Högskola", 75)
	s.Require().NoError(err)
	again, err := s.universities.Ensure(s.ctx, "öLANDS HÖGSKOLA", 10)
	s.Require().NoError(err)
	s.Equal(ensured.ID, again.ID)
	s.Equal(75, again.Score)
}

func (s *PostgresRepositorySuite) TestUniversityEnsure() {
	_, err := s.universities.Create(s.ctx, &domain.University{Name: "MIT", Score: 70})
	s.Require().NoError(err)

	existing, err := s.universities.Ensure(s.ctx, "mit", 10)
	s.Require().NoError(err)
	s.Equal(70, existing.Score)

	created, err := s.universities.Ensure(s.ctx, "ETH", 75)
	s.Require().NoError(err)
	s.Equal(75, created.Score)

	_, err = s.universities.Create(s.ctx, &domain.University{Name: "eth", Score: 1})
	s.Require().ErrorIs(err, repository.ErrConflict)
}

// TestConcurrentRegistrationSameName verifies the unique index lets exactly one insert win.
func (s *PostgresRepositorySuite) TestConcurrentRegistrationSameName() {
	const goroutines = 20

	var wg sync.WaitGroup
	var successCount atomic.Int32
	var conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.users.Create(s.ctx, &domain.User{UserName: "racer", UniversityName: "MIT"})
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, repository.ErrConflict):
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load())
	s.Equal(int32(goroutines-1), conflictCount.Load())
}
