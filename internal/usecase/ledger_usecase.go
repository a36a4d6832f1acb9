package usecase

import (
	"context"

	"krishihive/internal/domain/entity"
)

// LedgerUsecase defines the interface for the accounting and dashboard reads.
type LedgerUsecase interface {
	// ListTransactions returns ledger entries, optionally filtered by category.
	ListTransactions(ctx context.Context, category string) ([]*entity.Transaction, error)

	// RecordTransaction appends a credit/debit entry to the ledger.
	RecordTransaction(ctx context.Context, input *RecordTransactionInput) (*entity.Transaction, error)

	// ListAccounts returns the FPO's bank accounts.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// ListMarketPrices returns commodity quotes for the dashboard.
	ListMarketPrices(ctx context.Context, commodity string) ([]*entity.MarketPrice, error)
}

// --- Input DTOs ---

// RecordTransactionInput defines the data required to record a ledger entry.
type RecordTransactionInput struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=credit debit"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	MemberID    string  `json:"member_id,omitempty"`
}
