package backoffice

import (
	"encoding/json"
	"fmt"

	"github.com/belreon/backoffice/date"
	"github.com/shopspring/decimal"
)

// Category classifies a statement entry and decides which statement the
// entry belongs to.
type Category string

const (
	Revenue   Category = "Revenue"
	Expense   Category = "Expense"
	Asset     Category = "Asset"
	Liability Category = "Liability"
)

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Revenue, Expense, Asset, Liability:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// StatementKind identifies one of the two financial statements.
type StatementKind int

const (
	ProfitAndLoss StatementKind = iota
	BalanceSheet
)

func (s StatementKind) String() string {
	switch s {
	case ProfitAndLoss:
		return "profit-and-loss"
	case BalanceSheet:
		return "balance-sheet"
	default:
		return "unknown"
	}
}

// Statement returns the statement an entry of this category is routed to.
// Revenue and Expense rows belong to the Profit & Loss statement, Asset
// and Liability rows to the Balance Sheet.
func (c Category) Statement() StatementKind {
	switch c {
	case Revenue, Expense:
		return ProfitAndLoss
	default:
		return BalanceSheet
	}
}

// Entry is one row of a financial statement: a signed amount against a
// named account, grouped with its counterpart rows by TransactionID.
type Entry struct {
	ID            int       // unique across both statements
	Date          date.Date // posting date
	Account       string    // account name, the "particulars" column
	Description   string    // free text shared by the whole group
	Category      Category  // decides the statement (see Statement)
	Amount        Money     // signed
	TransactionID string    // shared by all entries posted together
	Deletion
}

// MarshalJSON flattens the amount's currency and value into the entry
// object, keeping snapshot lines one level deep.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("particulars", e.Account)
	w.Optional("description", e.Description)
	w.Append("category", e.Category)
	w.EmbedFrom(e.Amount)
	w.Append("transactionId", e.TransactionID)
	if e.IsDeleted {
		w.Append("isDeleted", true)
		w.Optional("deletedBy", e.DeletedBy)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var j struct {
		ID            int             `json:"id"`
		Date          date.Date       `json:"date"`
		Particulars   string          `json:"particulars"`
		Description   string          `json:"description"`
		Category      Category        `json:"category"`
		Currency      string          `json:"currency"`
		Amount        decimal.Decimal `json:"amount"`
		TransactionID string          `json:"transactionId"`
		IsDeleted     bool            `json:"isDeleted"`
		DeletedBy     string          `json:"deletedBy"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if _, err := ParseCategory(string(j.Category)); err != nil {
		return err
	}
	*e = Entry{
		ID:            j.ID,
		Date:          j.Date,
		Account:       j.Particulars,
		Description:   j.Description,
		Category:      j.Category,
		Amount:        M(j.Amount, j.Currency),
		TransactionID: j.TransactionID,
		Deletion:      Deletion{IsDeleted: j.IsDeleted, DeletedBy: j.DeletedBy},
	}
	return nil
}

var _ json.Marshaler = Entry{}
var _ json.Unmarshaler = (*Entry)(nil)
