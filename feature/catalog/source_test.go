package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-manager/core/storage"
	"catalog-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func feedConfig(fallbackURL string) storage.Config {
	return storage.Config{
		Bucket:          "storefront",
		FeedObject:      "feed/listing_products.txt",
		FeedFallbackURL: fallbackURL,
	}
}

func TestStorageFeedSource_FetchFromBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "storefront", "feed/listing_products.txt", mock.Anything).
		Return(io.NopCloser(strings.NewReader(testFeed)), nil)

	src := NewStorageFeedSource(mockClient, feedConfig(""), zap.NewNop())

	text, err := src.FetchFeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testFeed, text)
	mockClient.AssertExpectations(t)
}

func TestStorageFeedSource_FallbackToHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testFeed))
	}))
	defer server.Close()

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "storefront", "feed/listing_products.txt", mock.Anything).
		Return(nil, errors.New("connection refused"))

	src := NewStorageFeedSource(mockClient, feedConfig(server.URL), zap.NewNop())

	text, err := src.FetchFeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testFeed, text)
}

func TestStorageFeedSource_FallbackRejectsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "storefront", "feed/listing_products.txt", mock.Anything).
		Return(nil, errors.New("connection refused"))

	src := NewStorageFeedSource(mockClient, feedConfig(server.URL), zap.NewNop())

	_, err := src.FetchFeed(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestStorageFeedSource_NoFallbackPropagatesError(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "storefront", "feed/listing_products.txt", mock.Anything).
		Return(nil, errors.New("connection refused"))

	src := NewStorageFeedSource(mockClient, feedConfig(""), zap.NewNop())

	_, err := src.FetchFeed(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
