package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"krishihive/internal/domain/entity"
	domainerrors "krishihive/internal/domain/errors"
	"krishihive/internal/domain/repository"
	mockRepo "krishihive/internal/mocks/repository"
	mockService "krishihive/internal/mocks/service"
	"krishihive/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryProductCache is a map-backed ProductCache for tests.
type memoryProductCache struct {
	mu       sync.Mutex
	listings map[string][]*entity.Product
}

func newMemoryProductCache() *memoryProductCache {
	return &memoryProductCache{listings: make(map[string][]*entity.Product)}
}

func (c *memoryProductCache) GetListing(_ context.Context, category string) ([]*entity.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, ok := c.listings[category]

	return products, ok
}

func (c *memoryProductCache) SetListing(_ context.Context, category string, products []*entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listings[category] = products
}

func (c *memoryProductCache) InvalidateListing(_ context.Context, category string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.listings, category)
}

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	storage     *mockService.MockObjectStorage
	cache       *memoryProductCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	storage := mockService.NewMockObjectStorage(t)
	cache := newMemoryProductCache()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewCatalogService(productRepo, storage, cache, logger)

	return catalogServiceFixtures{
		service:     svc,
		productRepo: productRepo,
		storage:     storage,
		cache:       cache,
	}
}

func seedProduct() *entity.Product {
	return &entity.Product{
		ID:         "prod-1",
		Name:       "Hybrid Maize Seeds",
		Category:   "seeds",
		Price:      350,
		Quantity:   40,
		Unit:       "kg",
		SellerID:   "uid-seller",
		SellerName: "Green Valley FPO",
	}
}

func TestCatalogService_ListProducts_CacheMissFallsThrough(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	expected := []*entity.Product{seedProduct()}
	fx.productRepo.EXPECT().ListByCategory(ctx, "seeds", defaultCatalogLimit).Return(expected, nil)

	products, err := fx.service.ListProducts(ctx, "seeds")

	require.NoError(t, err)
	assert.Equal(t, expected, products)

	// The miss populated the cache; the second read never hits the repo.
	again, err := fx.service.ListProducts(ctx, "seeds")
	require.NoError(t, err)
	assert.Equal(t, expected, again)
	fx.productRepo.AssertNumberOfCalls(t, "ListByCategory", 1)
}

func TestCatalogService_ListProducts_RepoError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		ListByCategory(ctx, "", defaultCatalogLimit).
		Return(nil, errors.New("firestore unavailable"))

	_, err := fx.service.ListProducts(ctx, "")

	assert.Error(t, err)
}

func TestCatalogService_ListProducts_NilCache(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewCatalogService(productRepo, mockService.NewMockObjectStorage(t), nil, logger)
	ctx := context.Background()

	expected := []*entity.Product{seedProduct()}
	productRepo.EXPECT().ListByCategory(ctx, "seeds", defaultCatalogLimit).Return(expected, nil).Twice()

	for i := 0; i < 2; i++ {
		products, err := svc.ListProducts(ctx, "seeds")
		require.NoError(t, err)
		assert.Equal(t, expected, products)
	}
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	expected := seedProduct()
	fx.productRepo.EXPECT().FindByID(ctx, "prod-1").Return(expected, nil)

	product, err := fx.service.GetProduct(ctx, "prod-1")

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, "prod-x").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, "prod-x")

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateProduct_WithImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	fx.cache.SetListing(ctx, "seeds", []*entity.Product{seedProduct()})
	fx.cache.SetListing(ctx, "", []*entity.Product{seedProduct()})

	input := &usecase.CreateProductInput{
		Name:             "Hybrid Maize Seeds",
		Category:         "seeds",
		Price:            350,
		Quantity:         40,
		Unit:             "kg",
		SellerName:       "Green Valley FPO",
		ImageName:        "maize.png",
		ImageContentType: "image/png",
		Image:            strings.NewReader("png-bytes"),
	}

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", input.Image).
		Run(func(ctx context.Context, key string, contentType string, r io.Reader) {
			assert.True(t, strings.HasPrefix(key, "products/"))
			assert.True(t, strings.HasSuffix(key, "_maize.png"))
		}).
		Return("https://storage.example.com/products/maize.png", nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, "https://storage.example.com/products/maize.png", product.ImageURL)
			assert.Equal(t, "uid-seller", product.SellerID)
		}).
		Return("prod-2", nil)

	product, err := fx.service.CreateProduct(ctx, "uid-seller", input)

	require.NoError(t, err)
	assert.Equal(t, "prod-2", product.ID)

	// Both the category listing and the full catalog were invalidated.
	_, ok := fx.cache.GetListing(ctx, "seeds")
	assert.False(t, ok)
	_, ok = fx.cache.GetListing(ctx, "")
	assert.False(t, ok)
}

func TestCatalogService_CreateProduct_WithoutImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	input := &usecase.CreateProductInput{
		Name:     "Vermicompost",
		Category: "fertilizer",
		Price:    120,
		Quantity: 100,
		Unit:     "kg",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Empty(t, product.ImageURL)
		}).
		Return("prod-3", nil)

	product, err := fx.service.CreateProduct(ctx, "uid-seller", input)

	require.NoError(t, err)
	assert.Equal(t, "prod-3", product.ID)
}

func TestCatalogService_CreateProduct_UploadFailureSkipsWrite(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	input := &usecase.CreateProductInput{
		Name:             "Hybrid Maize Seeds",
		Category:         "seeds",
		Price:            350,
		Quantity:         40,
		Unit:             "kg",
		ImageName:        "maize.png",
		ImageContentType: "image/png",
		Image:            strings.NewReader("png-bytes"),
	}

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", input.Image).
		Return("", errors.New("bucket unavailable"))

	// No productRepo.Create expectation: a listing must never point at an
	// object that was not stored.
	_, err := fx.service.CreateProduct(ctx, "uid-seller", input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrImageUploadFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_CreateProduct_Unauthenticated(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateProduct(context.Background(), "", &usecase.CreateProductInput{})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
