package firestore

import (
	"context"

	"krishihive/internal/domain/entity"
	"krishihive/internal/domain/repository"
	"krishihive/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// productRepository implements repository.ProductRepository on products/{id}.
type productRepository struct {
	client *firestore.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

// FindByID retrieves a single product by its document ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := repo.client.Collection(collProducts).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product document")
	}

	var doc model.ProductModel
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}

	return model.ToProductDomain(snap.Ref.ID, &doc), nil
}

// ListByCategory returns products in a category, newest first. An empty
// category returns the whole catalog.
func (repo *productRepository) ListByCategory(ctx context.Context, category string, limit int) ([]*entity.Product, error) {
	query := repo.client.Collection(collProducts).Query
	if category != "" {
		query = query.Where("category", "==", category)
	}

	iter := query.
		OrderBy("updatedAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate products")
		}

		var doc model.ProductModel
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode product document")
		}

		products = append(products, model.ToProductDomain(snap.Ref.ID, &doc))
	}

	return products, nil
}

// Create persists a new product and returns the Firestore-assigned ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) (string, error) {
	doc := model.FromProductDomain(product)

	ref, _, err := repo.client.Collection(collProducts).Add(ctx, doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to create product document")
	}

	return ref.ID, nil
}
