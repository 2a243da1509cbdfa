package catalog

import (
	"context"

	"catalog-manager/feature/catalog/models"
	"catalog-manager/feature/catalog/query"

	"go.uber.org/zap"
)

// Service answers catalog queries over the cached collection.
type Service struct {
	cache  *Cache
	logger *zap.Logger
}

// NewService creates a catalog service reading from the given feed source.
func NewService(source FeedSource, logger *zap.Logger) *Service {
	return &Service{
		cache:  NewCache(source, logger),
		logger: logger,
	}
}

// Products returns the filtered, ordered listing for the given spec.
func (s *Service) Products(ctx context.Context, spec query.Spec) ([]models.ProductRecord, error) {
	records, err := s.cache.Load(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(records, spec), nil
}

// Product returns the record with the given id, or nil when absent.
func (s *Service) Product(ctx context.Context, id int) (*models.ProductRecord, error) {
	records, err := s.cache.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

// Facets derives the filter options from the loaded collection.
func (s *Service) Facets(ctx context.Context) (models.Facets, error) {
	records, err := s.cache.Load(ctx)
	if err != nil {
		return models.Facets{}, err
	}
	return models.Facets{
		Seasons: query.SeasonOptions(records),
		Genders: query.GenderOptions(records),
	}, nil
}

// Stats reports the cache state.
func (s *Service) Stats() models.CacheStats {
	loaded, total, malformed, duplicates := s.cache.Stats()
	return models.CacheStats{
		Loaded:     loaded,
		Total:      total,
		Malformed:  malformed,
		Duplicates: duplicates,
	}
}

// Reload drops the cached catalog so the next query refetches the feed.
func (s *Service) Reload() {
	s.logger.Info("Catalog cache cleared")
	s.cache.Clear()
}
