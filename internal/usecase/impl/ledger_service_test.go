package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"krishihive/internal/domain/entity"
	domainerrors "krishihive/internal/domain/errors"
	mockRepo "krishihive/internal/mocks/repository"
	"krishihive/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ledgerServiceFixtures holds all test dependencies for ledger service tests.
type ledgerServiceFixtures struct {
	service    usecase.LedgerUsecase
	ledgerRepo *mockRepo.MockLedgerRepository
}

func createTestLedgerService(t *testing.T) ledgerServiceFixtures {
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewLedgerService(ledgerRepo, logger)

	return ledgerServiceFixtures{
		service:    svc,
		ledgerRepo: ledgerRepo,
	}
}

func TestLedgerService_ListTransactions_All(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()

	expected := []*entity.Transaction{
		{ID: "tx-1", Amount: 5000, Type: entity.TransactionCredit, Category: entity.CategorySales},
	}
	fx.ledgerRepo.EXPECT().
		ListTransactions(ctx, entity.TransactionCategory(""), defaultLedgerLimit).
		Return(expected, nil)

	txs, err := fx.service.ListTransactions(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, expected, txs)
}

func TestLedgerService_ListTransactions_UnknownCategory(t *testing.T) {
	fx := createTestLedgerService(t)

	_, err := fx.service.ListTransactions(context.Background(), "gambling")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTransactionInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestLedgerService_RecordTransaction_Success(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()

	input := &usecase.RecordTransactionInput{
		Amount:      7500,
		Type:        "credit",
		Category:    "sales",
		Description: "Wholesale paddy lot",
		MemberID:    "uid-1",
	}

	fx.ledgerRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(ctx context.Context, tx *entity.Transaction) {
			assert.Equal(t, entity.TransactionCredit, tx.Type)
			assert.Equal(t, entity.CategorySales, tx.Category)
			assert.False(t, tx.Date.IsZero())
		}).
		Return("tx-9", nil)

	tx, err := fx.service.RecordTransaction(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "tx-9", tx.ID)
}

func TestLedgerService_RecordTransaction_UnknownType(t *testing.T) {
	fx := createTestLedgerService(t)

	_, err := fx.service.RecordTransaction(context.Background(), &usecase.RecordTransactionInput{
		Amount:   100,
		Type:     "transfer",
		Category: "sales",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTransactionInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestLedgerService_RecordTransaction_RepoError(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()

	fx.ledgerRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
		Return("", errors.New("firestore unavailable"))

	_, err := fx.service.RecordTransaction(ctx, &usecase.RecordTransactionInput{
		Amount:   100,
		Type:     "debit",
		Category: "maintenance",
	})

	assert.Error(t, err)
}

func TestLedgerService_ListAccounts_Success(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()

	expected := []*entity.Account{{ID: "acc-1", Name: "Operating", Balance: 120000}}
	fx.ledgerRepo.EXPECT().ListAccounts(ctx).Return(expected, nil)

	accounts, err := fx.service.ListAccounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, accounts)
}

func TestLedgerService_ListMarketPrices_Success(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()

	expected := []*entity.MarketPrice{{ID: "mp-1", Commodity: "wheat", Price: 2250}}
	fx.ledgerRepo.EXPECT().
		ListMarketPrices(ctx, "wheat", defaultLedgerLimit).
		Return(expected, nil)

	prices, err := fx.service.ListMarketPrices(ctx, "wheat")

	require.NoError(t, err)
	assert.Equal(t, expected, prices)
}
