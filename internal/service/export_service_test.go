package service_test

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"scholar-registry/internal/domain"
	"scholar-registry/internal/repository/mocks"
	"scholar-registry/internal/service"
	"scholar-registry/internal/storage"
)

type recordingStorage struct {
	bucket      string
	key         string
	contentType string
	body        []byte
	listPrefix  string
}

func (r *recordingStorage) PutObject(_ context.Context, bucket, key string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	r.bucket, r.key, r.contentType, r.body = bucket, key, contentType, data
	return "s3://" + bucket + "/" + key, nil
}

func (r *recordingStorage) ListObjects(_ context.Context, _ string, prefix string) ([]storage.ObjectInfo, error) {
	r.listPrefix = prefix
	return []storage.ObjectInfo{{Key: prefix + "users-20261018T120000Z.json", Size: 42}}, nil
}

func TestExportService(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	t.Run("uploads the roster as json", func(t *testing.T) {
		users := mocks.NewMockUserRepository(gomock.NewController(t))
		users.EXPECT().List(gomock.Any()).Return([]domain.User{
			{ID: 1, UserName: "alice", UniversityName: "MIT", NumberOfPublications: 5, Reviewer: true},
		}, nil)
		store := &recordingStorage{}

		svc := service.NewExportService(users, store, service.ExportOptions{
			Bucket:    "rosters",
			KeyPrefix: "/snapshots/",
			Now:       func() time.Time { return fixed },
		})

		location, err := svc.ExportUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, "s3://rosters/snapshots/users-20261018T120000Z.json", location)
		assert.Equal(t, "application/json", store.contentType)

		var snapshot struct {
			ExportedAt time.Time        `json:"exportedAt"`
			Users      []map[string]any `json:"users"`
		}
		require.NoError(t, json.Unmarshal(store.body, &snapshot))
		assert.True(t, fixed.Equal(snapshot.ExportedAt))
		require.Len(t, snapshot.Users, 1)
		assert.Equal(t, "alice", snapshot.Users[0]["userName"])
		assert.Equal(t, true, snapshot.Users[0]["reviewer"])
	})

	t.Run("lists exports under the prefix", func(t *testing.T) {
		store := &recordingStorage{}
		svc := service.NewExportService(nil, store, service.ExportOptions{Bucket: "rosters", KeyPrefix: "snapshots"})

		objects, err := svc.ListExports(ctx)
		require.NoError(t, err)
		require.Len(t, objects, 1)
		assert.Equal(t, "snapshots/", store.listPrefix)
	})

	t.Run("fails when storage is not configured", func(t *testing.T) {
		svc := service.NewExportService(nil, nil, service.ExportOptions{})

		_, err := svc.ExportUsers(ctx)
		require.ErrorIs(t, err, service.ErrExportNotConfigured)
		_, err = svc.ListExports(ctx)
		require.ErrorIs(t, err, service.ErrExportNotConfigured)
	})
}
