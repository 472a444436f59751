package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"scholar-registry/internal/domain"
	"scholar-registry/internal/repository"
	"scholar-registry/internal/repository/sqlite"
)

type RepositorySuite struct {
	suite.Suite
	ctx          context.Context
	users        repository.UserRepository
	universities repository.UniversityRepository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()

	db, err := sqlite.Open(filepath.Join(s.T().TempDir(), "registry.db"))
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })

	s.users = sqlite.NewUserRepository(db)
	s.universities = sqlite.NewUniversityRepository(db)
	s.Require().NoError(s.users.Init(s.ctx))
	s.Require().NoError(s.universities.Init(s.ctx))
}

func (s *RepositorySuite) createUser(name, university string, publications int) *domain.User {
	user := &domain.User{
		UserName:             name,
		UniversityName:       university,
		NumberOfPublications: publications,
	}
	_, err := s.users.Create(s.ctx, user)
	s.Require().NoError(err)
	return user
}

func (s *RepositorySuite) TestListUsers() {
	s.Run("returns empty slice when no users exist", func() {
		users, err := s.users.List(s.ctx)
		s.Require().NoError(err)
		s.NotNil(users)
		s.Empty(users)
	})

	s.Run("returns users ordered by id", func() {
		s.createUser("alice", "MIT", 5)
		s.createUser("bob", "ETH", 1)

		users, err := s.users.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(users, 2)
		s.Equal("alice", users[0].UserName)
		s.Equal("bob", users[1].UserName)
		s.Less(users[0].ID, users[1].ID)
	})
}

func (s *RepositorySuite) TestCreateUser() {
	s.Run("assigns sequential ids and defaults", func() {
		first := s.createUser("carol", "MIT", 2)
		second := s.createUser("dave", "MIT", 7)

		s.Positive(first.ID)
		s.Equal(first.ID+1, second.ID)

		found, err := s.users.GetByID(s.ctx, second.ID)
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal("dave", found.UserName)
		s.Equal("MIT", found.UniversityName)
		s.Equal(7, found.NumberOfPublications)
		s.False(found.Reviewer)
	})

	s.Run("does not create the referenced university", func() {
		s.createUser("erin", "Nowhere University", 1)

		university, err := s.universities.GetByName(s.ctx, "Nowhere University")
		s.Require().NoError(err)
		s.Nil(university)
	})

	s.Run("rejects a user name differing only in case", func() {
		s.createUser("Frank", "MIT", 1)

		_, err := s.users.Create(s.ctx, &domain.User{UserName: "frank", UniversityName: "MIT"})
		s.Require().ErrorIs(err, repository.ErrConflict)
	})

	s.Run("rejects a non-ASCII user name differing only in case", func() {
		s.createUser("Émile", "Sorbonne", 3)

		_, err := s.users.Create(s.ctx, &domain.User{UserName: "émile", UniversityName: "Sorbonne"})
		s.Require().ErrorIs(err, repository.ErrConflict)

		found, err := s.users.GetByUsername(s.ctx, "ÉMILE")
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal("Émile", found.UserName)
	})
}

func (s *RepositorySuite) TestUserLookups() {
	created := s.createUser("Grace", "MIT", 4)

	s.Run("finds user by id", func() {
		found, err := s.users.GetByID(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal(created.UserName, found.UserName)
	})

	s.Run("finds user by name ignoring case", func() {
		found, err := s.users.GetByUsername(s.ctx, "gRACE")
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal(created.ID, found.ID)
	})

	s.Run("returns nil without error for unknown id", func() {
		found, err := s.users.GetByID(s.ctx, 99999)
		s.Require().NoError(err)
		s.Nil(found)
	})

	s.Run("returns nil without error for unknown name", func() {
		found, err := s.users.GetByUsername(s.ctx, "nobody")
		s.Require().NoError(err)
		s.Nil(found)
	})
}

func (s *RepositorySuite) TestSetReviewer() {
	s.Run("flags the user and is idempotent", func() {
		user := s.createUser("heidi", "MIT", 9)

		updated, err := s.users.SetReviewer(s.ctx, user.ID)
		s.Require().NoError(err)
		s.True(updated.Reviewer)

		again, err := s.users.SetReviewer(s.ctx, user.ID)
		s.Require().NoError(err)
		s.True(again.Reviewer)

		found, err := s.users.GetByID(s.ctx, user.ID)
		s.Require().NoError(err)
		s.True(found.Reviewer)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.users.SetReviewer(s.ctx, 424242)
		s.Require().ErrorIs(err, repository.ErrNotFound)
	})
}

func (s *RepositorySuite) TestUniversities() {
	s.Run("creates and finds university ignoring case", func() {
		university := &domain.University{Name: "MIT", Score: 70}
		id, err := s.universities.Create(s.ctx, university)
		s.Require().NoError(err)
		s.Equal(id, university.ID)

		found, err := s.universities.GetByName(s.ctx, "mit")
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal(70, found.Score)
		s.Equal("MIT", found.Name)
	})

	s.Run("rejects duplicate name", func() {
		_, err := s.universities.Create(s.ctx, &domain.University{Name: "Mit", Score: 10})
		s.Require().ErrorIs(err, repository.ErrConflict)
	})

	s.Run("rejects and finds a non-ASCII name ignoring case", func() {
		_, err := s.universities.Create(s.ctx, &domain.University{Name: "Ölands Högskola", Score: 65})
		s.Require().NoError(err)

		_, err = s.universities.Create(s.ctx, &domain.University{Name: "öLANDS HÖGSKOLA", Score: 10})
		s.Require().ErrorIs(err, repository.ErrConflict)

		found, err := s.universities.GetByName(s.ctx, "ölands högskola")
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal(65, found.Score)
	})

	s.Run("returns nil for unknown name", func() {
		found, err := s.universities.GetByName(s.ctx, "Unknown")
		s.Require().NoError(err)
		s.Nil(found)
	})

	s.Run("ensure inserts missing university with default score", func() {
		ensured, err := s.universities.Ensure(s.ctx, "ETH", 75)
		s.Require().NoError(err)
		s.Equal("ETH", ensured.Name)
		s.Equal(75, ensured.Score)
	})

	s.Run("ensure keeps existing score", func() {
		ensured, err := s.universities.Ensure(s.ctx, "mit", 10)
		s.Require().NoError(err)
		s.Equal("MIT", ensured.Name)
		s.Equal(70, ensured.Score)
	})

	s.Run("lists universities in creation order", func() {
		all, err := s.universities.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 3)
		s.Equal("MIT", all[0].Name)
		s.Equal("Ölands Högskola", all[1].Name)
		s.Equal("ETH", all[2].Name)
	})
}
