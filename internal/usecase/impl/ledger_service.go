package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "krishihive/internal/delivery/context"
	"krishihive/internal/domain/entity"
	domainerrors "krishihive/internal/domain/errors"
	"krishihive/internal/domain/repository"
	"krishihive/internal/usecase"

	"github.com/pkg/errors"
)

const defaultLedgerLimit = 200

// ledgerService implements the LedgerUsecase interface.
type ledgerService struct {
	ledgerRepo repository.LedgerRepository
	logger     *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(
	ledgerRepo repository.LedgerRepository,
	logger *slog.Logger,
) usecase.LedgerUsecase {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTransactions returns ledger entries, optionally filtered by category.
func (srv *ledgerService) ListTransactions(ctx context.Context, category string) ([]*entity.Transaction, error) {
	cat := entity.TransactionCategory(category)
	if category != "" && !cat.IsValid() {
		return nil, domainerrors.ErrTransactionInvalid.WithDetails("unknown category: " + category)
	}

	txs, err := srv.ledgerRepo.ListTransactions(ctx, cat, defaultLedgerLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return txs, nil
}

// RecordTransaction appends a credit/debit entry to the ledger.
func (srv *ledgerService) RecordTransaction(ctx context.Context, input *usecase.RecordTransactionInput) (*entity.Transaction, error) {
	txType := entity.TransactionType(input.Type)
	if !txType.IsValid() {
		return nil, domainerrors.ErrTransactionInvalid.WithDetails("unknown type: " + input.Type)
	}

	category := entity.TransactionCategory(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrTransactionInvalid.WithDetails("unknown category: " + input.Category)
	}

	tx := &entity.Transaction{
		Amount:      input.Amount,
		Type:        txType,
		Category:    category,
		Description: input.Description,
		MemberID:    input.MemberID,
		Date:        time.Now().UTC(),
	}

	id, err := srv.ledgerRepo.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to record transaction")
	}
	tx.ID = id

	srv.log(ctx).Info("ledger entry recorded",
		slog.String("transaction_id", id),
		slog.String("type", input.Type),
		slog.String("category", input.Category),
	)

	return tx, nil
}

// ListAccounts returns the FPO's bank accounts.
func (srv *ledgerService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.ledgerRepo.ListAccounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// ListMarketPrices returns commodity quotes for the dashboard.
func (srv *ledgerService) ListMarketPrices(ctx context.Context, commodity string) ([]*entity.MarketPrice, error) {
	prices, err := srv.ledgerRepo.ListMarketPrices(ctx, commodity, defaultLedgerLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list market prices")
	}

	return prices, nil
}
