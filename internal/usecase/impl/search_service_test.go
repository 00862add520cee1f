package impl

import (
	"context"
	"testing"
	"time"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/repository"
	mockRepo "estatex/internal/mocks/repository"
	mockSvc "estatex/internal/mocks/service"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSearchService(t *testing.T) (
	usecase.SearchUsecase,
	*mockRepo.MockPropertyRepository,
	*mockSvc.MockQueryCache,
) {
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	cache := mockSvc.NewMockQueryCache(t)
	service := NewSearchService(propertyRepo, cache, 5*time.Minute, testLogger())

	return service, propertyRepo, cache
}

func TestSearchService_Search_CacheMissQueriesAndCaches(t *testing.T) {
	service, propertyRepo, cache := createTestSearchService(t)

	ctx := context.Background()
	filter := repository.SearchFilter{Location: "Andheri", Category: "rental"}
	property := testProperty()
	property.ID = uuid.New()

	cache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(false, nil)
	propertyRepo.EXPECT().Search(ctx, filter).Return([]*entity.Property{property}, nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, 5*time.Minute).Return(nil)

	results, err := service.Search(ctx, filter)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, property.ID.String(), results[0].ID)
	assert.Equal(t, property.BuildingSociety, results[0].Society)
}

func TestSearchService_Search_CacheHitSkipsRepository(t *testing.T) {
	service, _, cache := createTestSearchService(t)

	ctx := context.Background()
	filter := repository.SearchFilter{Query: "sea view"}

	cache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Run(func(_ context.Context, _ string, dest any) {
		results := dest.(*[]*usecase.SearchResult)
		*results = []*usecase.SearchResult{{ID: "cached"}}
	}).Return(true, nil)

	results, err := service.Search(ctx, filter)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "cached", results[0].ID)
}

func TestSearchService_Search_CacheFailureDegradesToQuery(t *testing.T) {
	service, propertyRepo, cache := createTestSearchService(t)

	ctx := context.Background()
	filter := repository.SearchFilter{}

	cache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
	propertyRepo.EXPECT().Search(ctx, filter).Return(nil, nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	results, err := service.Search(ctx, filter)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchCacheKey_NormalizesEquivalentFilters(t *testing.T) {
	a := searchCacheKey(repository.SearchFilter{Location: " Andheri ", Category: "Rental"})
	b := searchCacheKey(repository.SearchFilter{Location: "andheri", Category: "rental"})
	c := searchCacheKey(repository.SearchFilter{Location: "bandra", Category: "rental"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
