// Package firestore contains the concrete implementation of the persistence
// layer on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"krishihive/config"
	"krishihive/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names. Document IDs for carts and profiles are the auth
// provider's UID; everything else is Firestore-assigned.
const (
	collCarts        = "carts"
	collUsers        = "users"
	collProducts     = "products"
	collOrders       = "orders"
	collTransactions = "transactions"
	collAccounts     = "accounts"
	collMarketPrices = "marketPrices"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := firestore.NewClient(context.Background(), cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
