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

// ledgerRepository implements repository.LedgerRepository on the
// transactions, accounts and marketPrices collections.
type ledgerRepository struct {
	client *firestore.Client
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(client *firestore.Client) repository.LedgerRepository {
	return &ledgerRepository{client: client}
}

// CreateTransaction records a ledger entry and returns the assigned ID.
func (repo *ledgerRepository) CreateTransaction(ctx context.Context, tx *entity.Transaction) (string, error) {
	doc := model.FromTransactionDomain(tx)

	ref, _, err := repo.client.Collection(collTransactions).Add(ctx, doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to create transaction document")
	}

	return ref.ID, nil
}

// ListTransactions returns ledger entries, newest first.
func (repo *ledgerRepository) ListTransactions(ctx context.Context, category entity.TransactionCategory, limit int) ([]*entity.Transaction, error) {
	query := repo.client.Collection(collTransactions).Query
	if category != "" {
		query = query.Where("category", "==", string(category))
	}

	iter := query.
		OrderBy("date", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var txs []*entity.Transaction
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate transactions")
		}

		var doc model.TransactionModel
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode transaction document")
		}

		txs = append(txs, model.ToTransactionDomain(snap.Ref.ID, &doc))
	}

	return txs, nil
}

// ListAccounts returns the FPO's bank accounts.
func (repo *ledgerRepository) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	iter := repo.client.Collection(collAccounts).Documents(ctx)
	defer iter.Stop()

	var accounts []*entity.Account
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate accounts")
		}

		var doc model.AccountModel
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode account document")
		}

		accounts = append(accounts, model.ToAccountDomain(snap.Ref.ID, &doc))
	}

	return accounts, nil
}

// ListMarketPrices returns commodity quotes, newest first.
func (repo *ledgerRepository) ListMarketPrices(ctx context.Context, commodity string, limit int) ([]*entity.MarketPrice, error) {
	query := repo.client.Collection(collMarketPrices).Query
	if commodity != "" {
		query = query.Where("commodity", "==", commodity)
	}

	iter := query.
		OrderBy("date", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var prices []*entity.MarketPrice
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate market prices")
		}

		var doc model.MarketPriceModel
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode market price document")
		}

		prices = append(prices, model.ToMarketPriceDomain(snap.Ref.ID, &doc))
	}

	return prices, nil
}
