package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	deliverycontext "krishihive/internal/delivery/context"
	"krishihive/internal/domain/entity"
	domainerrors "krishihive/internal/domain/errors"
	"krishihive/internal/domain/repository"
	"krishihive/internal/domain/service"
	"krishihive/internal/usecase"

	"github.com/pkg/errors"
)

const defaultCatalogLimit = 100

// ProductCache is a read-through cache over category listings. Implementations
// are optional; a nil cache disables caching entirely.
type ProductCache interface {
	GetListing(ctx context.Context, category string) ([]*entity.Product, bool)
	SetListing(ctx context.Context, category string, products []*entity.Product)
	InvalidateListing(ctx context.Context, category string)
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	storage     service.ObjectStorage
	cache       ProductCache
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	storage service.ObjectStorage,
	cache ProductCache,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		storage:     storage,
		cache:       cache,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns catalog entries for a category, newest first.
// Cache-aside: a cache miss or cache failure falls through to the store.
func (srv *catalogService) ListProducts(ctx context.Context, category string) ([]*entity.Product, error) {
	if srv.cache != nil {
		if products, ok := srv.cache.GetListing(ctx, category); ok {
			return products, nil
		}
	}

	products, err := srv.productRepo.ListByCategory(ctx, category, defaultCatalogLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	if srv.cache != nil {
		srv.cache.SetListing(ctx, category, products)
	}

	return products, nil
}

// GetProduct retrieves a single listing.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "no product for id")
		}

		return nil, errors.Wrap(err, "failed to fetch product")
	}

	return product, nil
}

// CreateProduct publishes a seller's listing. The image upload happens before
// the catalog write so a listing never points at an object that is not there.
func (srv *catalogService) CreateProduct(ctx context.Context, sellerID string, input *usecase.CreateProductInput) (*entity.Product, error) {
	if sellerID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	var imageURL string
	if input.Image != nil {
		key := fmt.Sprintf("products/%d_%s", time.Now().UnixMilli(), path.Base(input.ImageName))

		url, err := srv.storage.Upload(ctx, key, input.ImageContentType, input.Image)
		if err != nil {
			srv.log(ctx).Error("product image upload failed",
				slog.String("seller_id", sellerID),
				slog.Any("error", err),
			)

			return nil, domainerrors.ErrImageUploadFailed.WithDetails(err.Error())
		}
		imageURL = url
	}

	now := time.Now().UTC()
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		ImageURL:    imageURL,
		SellerID:    sellerID,
		SellerName:  input.SellerName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := srv.productRepo.Create(ctx, product)
	if err != nil {
		return nil, domainerrors.ErrProductCreationFailed.WithDetails(err.Error())
	}
	product.ID = id

	if srv.cache != nil {
		// The new listing must show up on the next catalog read.
		srv.cache.InvalidateListing(ctx, product.Category)
		srv.cache.InvalidateListing(ctx, "")
	}

	srv.log(ctx).Info("product listed",
		slog.String("product_id", id),
		slog.String("seller_id", sellerID),
		slog.String("category", product.Category),
	)

	return product, nil
}
