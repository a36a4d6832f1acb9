package firestore

import (
	"context"

	"krishihive/internal/domain/entity"
	"krishihive/internal/domain/repository"
	"krishihive/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// orderRepository implements repository.OrderRepository on orders/{id}.
type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

// Create persists a new order and returns the Firestore-assigned ID.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) (string, error) {
	doc := model.FromOrderDomain(order)

	ref, _, err := repo.client.Collection(collOrders).Add(ctx, doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to create order document")
	}

	return ref.ID, nil
}

// ListByBuyer returns a buyer's orders, newest first.
func (repo *orderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	iter := repo.client.Collection(collOrders).
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var orders []*entity.Order
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate orders")
		}

		var doc model.OrderModel
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode order document")
		}

		orders = append(orders, model.ToOrderDomain(snap.Ref.ID, &doc))
	}

	return orders, nil
}
