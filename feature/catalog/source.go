package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"catalog-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// FeedSource yields the raw feed text.
type FeedSource interface {
	FetchFeed(ctx context.Context) (string, error)
}

// StorageFeedSource reads the feed object from the storage bucket. When
// the bucket read fails and a fallback URL is configured, the feed is
// fetched over plain HTTP instead, so a storage outage does not take the
// listing down with it.
type StorageFeedSource struct {
	client      storage.Client
	bucket      string
	object      string
	fallbackURL string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewStorageFeedSource creates a feed source over the given storage client.
func NewStorageFeedSource(client storage.Client, cfg storage.Config, logger *zap.Logger) *StorageFeedSource {
	return &StorageFeedSource{
		client:      client,
		bucket:      cfg.Bucket,
		object:      cfg.FeedObject,
		fallbackURL: cfg.FeedFallbackURL,
		httpClient:  http.DefaultClient,
		logger:      logger,
	}
}

// FetchFeed returns the full feed text.
func (s *StorageFeedSource) FetchFeed(ctx context.Context) (string, error) {
	text, err := s.fetchFromBucket(ctx)
	if err == nil {
		return text, nil
	}
	if s.fallbackURL == "" {
		return "", err
	}

	s.logger.Warn("Feed read from bucket failed, falling back to HTTP",
		zap.String("object", s.object),
		zap.Error(err))
	return s.fetchFromURL(ctx)
}

func (s *StorageFeedSource) fetchFromBucket(ctx context.Context) (string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get feed object %s: %w", s.object, err)
	}
	defer obj.Close()

	// Minio defers most errors to the first read, so a missing object
	// surfaces here rather than from GetObject.
	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("failed to read feed object %s: %w", s.object, err)
	}
	return string(data), nil
}

func (s *StorageFeedSource) fetchFromURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.fallbackURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch feed from %s: %w", s.fallbackURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("feed fetch from %s returned status %d", s.fallbackURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read feed response: %w", err)
	}
	return string(data), nil
}
