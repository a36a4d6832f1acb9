package handler

import (
	"log/slog"
	"net/http"

	"krishihive/internal/delivery/http/response"
	"krishihive/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LedgerHandler holds dependencies for accounting and dashboard handlers.
type LedgerHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler, injected by Fx.
func NewLedgerHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListTransactions returns ledger entries, optionally filtered by category.
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.uc.ListTransactions(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transactions, "Transactions retrieved")
}

// RecordTransaction appends a credit/debit entry to the ledger.
func (h *LedgerHandler) RecordTransaction(c echo.Context) error {
	var input *usecase.RecordTransactionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	transaction, err := h.uc.RecordTransaction(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, transaction, "Transaction recorded")
}

// ListAccounts returns the organization's bank accounts.
func (h *LedgerHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accounts, "Accounts retrieved")
}

// ListMarketPrices returns commodity quotes for the dashboard.
func (h *LedgerHandler) ListMarketPrices(c echo.Context) error {
	prices, err := h.uc.ListMarketPrices(c.Request().Context(), c.QueryParam("commodity"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prices, "Market prices retrieved")
}
