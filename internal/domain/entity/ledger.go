package entity

import "time"

// TransactionType distinguishes money flowing in from money flowing out.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// IsValid checks if the TransactionType is a known value.
func (t TransactionType) IsValid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

// TransactionCategory buckets ledger entries for the accounting views.
type TransactionCategory string

const (
	CategorySales       TransactionCategory = "sales"
	CategoryPurchase    TransactionCategory = "purchase"
	CategorySalary      TransactionCategory = "salary"
	CategoryMaintenance TransactionCategory = "maintenance"
	CategoryOther       TransactionCategory = "other"
)

// IsValid checks if the TransactionCategory is a known value.
func (c TransactionCategory) IsValid() bool {
	switch c {
	case CategorySales, CategoryPurchase, CategorySalary, CategoryMaintenance, CategoryOther:
		return true
	default:
		return false
	}
}

// Transaction is one entry in the FPO's ledger.
type Transaction struct {
	ID          string
	Amount      float64
	Type        TransactionType
	Category    TransactionCategory
	Description string
	MemberID    string // optional; set when the entry is tied to a member
	Date        time.Time
}

// Account is a bank account tracked in the accounting views.
type Account struct {
	ID            string
	Name          string
	Balance       float64
	Type          string // savings, current, loan
	BankName      string
	AccountNumber string
	IFSCCode      string
}

// MarketPrice is a commodity price quote shown on the dashboard.
type MarketPrice struct {
	ID        string
	Commodity string
	Market    string
	Price     float64
	Unit      string
	Date      time.Time
}
