package firestore

import (
	"context"

	"krishihive/internal/domain/entity"
	"krishihive/internal/domain/repository"
	"krishihive/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// cartRepository implements repository.CartRepository on carts/{uid}.
type cartRepository struct {
	client *firestore.Client
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(client *firestore.Client) repository.CartRepository {
	return &cartRepository{client: client}
}

// Load retrieves the saved item list for a user. A missing document is a
// normal state, reported as repository.ErrCartNotFound.
func (repo *cartRepository) Load(ctx context.Context, uid string) ([]entity.CartItem, error) {
	snap, err := repo.client.Collection(collCarts).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart document")
	}

	var doc model.CartModel
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart document")
	}

	return model.ToCartDomain(doc.Items), nil
}

// Save overwrites the user's cart document with the given item list.
// Set (not Update) keeps the write idempotent and creates the document on
// first save. Last write wins when two sessions save the same cart.
func (repo *cartRepository) Save(ctx context.Context, uid string, items []entity.CartItem) error {
	doc := model.CartModel{Items: model.FromCartDomain(items)}

	if _, err := repo.client.Collection(collCarts).Doc(uid).Set(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to save cart document")
	}

	return nil
}
