package repository

import (
	"context"

	"krishihive/internal/domain/entity"
)

// LedgerRepository backs the accounting and dashboard views.
type LedgerRepository interface {
	// CreateTransaction records a ledger entry and returns its assigned ID.
	CreateTransaction(ctx context.Context, tx *entity.Transaction) (string, error)

	// ListTransactions returns ledger entries, newest first. An empty
	// category returns all entries.
	ListTransactions(ctx context.Context, category entity.TransactionCategory, limit int) ([]*entity.Transaction, error)

	// ListAccounts returns the FPO's bank accounts.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// ListMarketPrices returns commodity quotes, newest first. An empty
	// commodity returns quotes for all commodities.
	ListMarketPrices(ctx context.Context, commodity string, limit int) ([]*entity.MarketPrice, error)
}
