package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"scholar-registry/internal/repository"
	"scholar-registry/internal/storage"
)

// ErrExportNotConfigured is returned when no object storage bucket is configured.
var ErrExportNotConfigured = errors.New("storage service not configured")

// ExportService publishes snapshots of the user roster to object storage.
type ExportService interface {
	ExportUsers(ctx context.Context) (string, error)
	ListExports(ctx context.Context) ([]storage.ObjectInfo, error)
}

// ExportOptions conveys the snapshot destination.
type ExportOptions struct {
	Bucket    string
	KeyPrefix string
	Now       func() time.Time
}

type exportService struct {
	users   repository.UserRepository
	storage storage.Service
	opts    ExportOptions
}

type exportedUser struct {
	ID                   int64  `json:"id"`
	UserName             string `json:"userName"`
	NumberOfPublications int    `json:"numberOfPublications"`
	UniversityName       string `json:"universityName"`
	Reviewer             bool   `json:"reviewer"`
}

type rosterSnapshot struct {
	ExportedAt time.Time      `json:"exportedAt"`
	Users      []exportedUser `json:"users"`
}

// NewExportService builds an ExportService. store may be nil, in which case every
// call fails with ErrExportNotConfigured.
func NewExportService(users repository.UserRepository, store storage.Service, opts ExportOptions) ExportService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.KeyPrefix = strings.Trim(opts.KeyPrefix, "/")
	return &exportService{
		users:   users,
		storage: store,
		opts:    opts,
	}
}

func (s *exportService) ExportUsers(ctx context.Context) (string, error) {
	if s.storage == nil || s.opts.Bucket == "" {
		return "", ErrExportNotConfigured
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return "", err
	}

	now := s.opts.Now().UTC()
	snapshot := rosterSnapshot{
		ExportedAt: now,
		Users:      make([]exportedUser, len(users)),
	}
	for i := range users {
		snapshot.Users[i] = exportedUser{
			ID:                   users[i].ID,
			UserName:             users[i].UserName,
			NumberOfPublications: users[i].NumberOfPublications,
			UniversityName:       users[i].UniversityName,
			Reviewer:             users[i].Reviewer,
		}
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(snapshot); err != nil {
		return "", fmt.Errorf("encode roster: %w", err)
	}

	key := path.Join(s.opts.KeyPrefix, fmt.Sprintf("users-%s.json", now.Format("20060102T150405Z")))
	return s.storage.PutObject(ctx, s.opts.Bucket, key, &buf, "application/json")
}

func (s *exportService) ListExports(ctx context.Context) ([]storage.ObjectInfo, error) {
	if s.storage == nil || s.opts.Bucket == "" {
		return nil, ErrExportNotConfigured
	}
	prefix := s.opts.KeyPrefix
	if prefix != "" {
		prefix += "/"
	}
	return s.storage.ListObjects(ctx, s.opts.Bucket, prefix)
}
