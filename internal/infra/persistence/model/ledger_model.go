package model

import (
	"time"

	"krishihive/internal/domain/entity"
)

// TransactionModel is a transactions/{id} document.
type TransactionModel struct {
	Amount      float64   `firestore:"amount"`
	Type        string    `firestore:"type"`
	Category    string    `firestore:"category"`
	Description string    `firestore:"description,omitempty"`
	MemberID    string    `firestore:"memberId,omitempty"`
	Date        time.Time `firestore:"date"`
}

// ToTransactionDomain converts a stored transaction back to a domain entity.
func ToTransactionDomain(id string, m *TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:          id,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Category:    entity.TransactionCategory(m.Category),
		Description: m.Description,
		MemberID:    m.MemberID,
		Date:        m.Date,
	}
}

// FromTransactionDomain converts a domain transaction into its stored form.
func FromTransactionDomain(tx *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Category:    string(tx.Category),
		Description: tx.Description,
		MemberID:    tx.MemberID,
		Date:        tx.Date,
	}
}

// AccountModel is an accounts/{id} document.
type AccountModel struct {
	Name          string  `firestore:"name"`
	Balance       float64 `firestore:"balance"`
	Type          string  `firestore:"type"`
	BankName      string  `firestore:"bankName,omitempty"`
	AccountNumber string  `firestore:"accountNumber,omitempty"`
	IFSCCode      string  `firestore:"ifscCode,omitempty"`
}

// ToAccountDomain converts a stored account back to a domain entity.
func ToAccountDomain(id string, m *AccountModel) *entity.Account {
	return &entity.Account{
		ID:            id,
		Name:          m.Name,
		Balance:       m.Balance,
		Type:          m.Type,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		IFSCCode:      m.IFSCCode,
	}
}

// MarketPriceModel is a marketPrices/{id} document.
type MarketPriceModel struct {
	Commodity string    `firestore:"commodity"`
	Market    string    `firestore:"market,omitempty"`
	Price     float64   `firestore:"price"`
	Unit      string    `firestore:"unit,omitempty"`
	Date      time.Time `firestore:"date"`
}

// ToMarketPriceDomain converts a stored quote back to a domain entity.
func ToMarketPriceDomain(id string, m *MarketPriceModel) *entity.MarketPrice {
	return &entity.MarketPrice{
		ID:        id,
		Commodity: m.Commodity,
		Market:    m.Market,
		Price:     m.Price,
		Unit:      m.Unit,
		Date:      m.Date,
	}
}
