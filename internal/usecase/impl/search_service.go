package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"estatex/internal/domain/repository"
	"estatex/internal/domain/service"
	"estatex/internal/errors"
	"estatex/internal/usecase"
)

type searchService struct {
	propertyRepo repository.PropertyRepository
	cache        service.QueryCache
	cacheTTL     time.Duration
	logger       *slog.Logger
}

// NewSearchService creates the channel-partner search service. Results are
// cached per normalized filter; cache failures degrade to direct queries.
func NewSearchService(
	propertyRepo repository.PropertyRepository,
	cache service.QueryCache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) usecase.SearchUsecase {
	return &searchService{
		propertyRepo: propertyRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

func (s *searchService) Search(ctx context.Context, filter repository.SearchFilter) ([]*usecase.SearchResult, error) {
	key := searchCacheKey(filter)

	var cached []*usecase.SearchResult
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("search cache read failed", slog.Any("error", err))
	}
	if hit {
		return cached, nil
	}

	properties, err := s.propertyRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "search listings")
	}

	results := make([]*usecase.SearchResult, 0, len(properties))
	for _, property := range properties {
		results = append(results, usecase.NewSearchResult(property))
	}

	if err := s.cache.Set(ctx, key, results, s.cacheTTL); err != nil {
		s.logger.Warn("search cache write failed", slog.Any("error", err))
	}

	return results, nil
}

// searchCacheKey derives a stable cache key from the normalized filter so
// equivalent queries share one entry.
func searchCacheKey(filter repository.SearchFilter) string {
	return fmt.Sprintf("search:%s:%s:%s:%s:%g:%g",
		strings.ToLower(strings.TrimSpace(filter.Query)),
		strings.ToLower(strings.TrimSpace(filter.Location)),
		strings.ToLower(strings.TrimSpace(filter.Category)),
		strings.ToLower(strings.TrimSpace(filter.PropertyType)),
		filter.MinPrice,
		filter.MaxPrice,
	)
}
