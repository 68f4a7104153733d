package backoffice

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"sort"
	"strings"

	"github.com/belreon/backoffice/date"
)

// TransactionKind is a typed string identifying the business meaning of
// a posting. The expansion into statement entries is fixed per kind.
type TransactionKind string

const (
	Income   TransactionKind = "income"
	Spending TransactionKind = "expense"
	Advance  TransactionKind = "advance"
	Transfer TransactionKind = "transfer"
)

// ParseTransactionKind parses a string into a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(s) {
	case Income, Spending, Advance, Transfer:
		return TransactionKind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// unearnedRevenueAccount is the liability account advances are parked
// in until the work is delivered.
const unearnedRevenueAccount = "Unearned Revenue"

// Posting is the input of the ledger poster: one business transaction
// to be expanded into balanced statement entries. Which account fields
// are required depends on the kind:
//
//	income:   RevenueAccount, ToAccount
//	expense:  ExpenseAccount, FromAccount
//	advance:  ToAccount
//	transfer: FromAccount, ToAccount
type Posting struct {
	Kind           TransactionKind
	Date           date.Date
	Description    string
	Amount         Money // must be strictly positive
	RevenueAccount string
	ExpenseAccount string
	FromAccount    string
	ToAccount      string
}

// Validate checks the posting before any entry is created.
func (p Posting) Validate() error {
	var errs error
	if _, err := ParseTransactionKind(string(p.Kind)); err != nil {
		errs = errors.Join(errs, err)
	}
	if !p.Amount.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("amount must be positive, got %s", p.Amount))
	}
	missing := func(field string) error {
		return fmt.Errorf("%s transaction requires %s", p.Kind, field)
	}
	switch p.Kind {
	case Income:
		if p.RevenueAccount == "" {
			errs = errors.Join(errs, missing("a revenue account"))
		}
		if p.ToAccount == "" {
			errs = errors.Join(errs, missing("a deposit account"))
		}
	case Spending:
		if p.ExpenseAccount == "" {
			errs = errors.Join(errs, missing("an expense account"))
		}
		if p.FromAccount == "" {
			errs = errors.Join(errs, missing("a payment account"))
		}
	case Advance:
		if p.ToAccount == "" {
			errs = errors.Join(errs, missing("a deposit account"))
		}
	case Transfer:
		if p.FromAccount == "" {
			errs = errors.Join(errs, missing("a source account"))
		}
		if p.ToAccount == "" {
			errs = errors.Join(errs, missing("a destination account"))
		}
	}
	return errs
}

// expand builds the entry templates for the posting. IDs and the
// transaction id are assigned by the ledger at append time.
func (p Posting) expand() []Entry {
	e := func(account string, category Category, amount Money) Entry {
		return Entry{
			Date:        p.Date,
			Account:     account,
			Description: p.Description,
			Category:    category,
			Amount:      amount,
		}
	}
	switch p.Kind {
	case Income:
		return []Entry{
			e(p.RevenueAccount, Revenue, p.Amount),
			e(p.ToAccount, Asset, p.Amount),
		}
	case Spending:
		return []Entry{
			e(p.ExpenseAccount, Expense, p.Amount),
			e(p.FromAccount, Asset, p.Amount.Neg()),
		}
	case Advance:
		return []Entry{
			e(unearnedRevenueAccount, Liability, p.Amount),
			e(p.ToAccount, Asset, p.Amount),
		}
	case Transfer:
		return []Entry{
			e(p.FromAccount, Asset, p.Amount.Neg()),
			e(p.ToAccount, Asset, p.Amount),
		}
	default:
		return nil
	}
}

// Ledger owns the two financial statements. Every entry lives in
// exactly one of them, decided by its category; entries posted together
// share a transaction id and change lifecycle state together.
type Ledger struct {
	profitAndLoss []Entry
	balanceSheet  []Entry
	nextID        int // next entry id, unique across both statements
	nextTxn       int // next transaction sequence number
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{nextID: 1, nextTxn: 1}
}

// newTransactionID mints a fresh transaction id.
func (l *Ledger) newTransactionID() string {
	id := fmt.Sprintf("txn_%03d", l.nextTxn)
	l.nextTxn++
	return id
}

// Post validates the posting, expands it into balanced entries under a
// freshly generated transaction id, and appends them to their
// statements. On error no entry is created.
func (l *Ledger) Post(p Posting) ([]Entry, error) {
	if p.Date.IsZero() {
		p.Date = date.Today()
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s posting: %w", p.Kind, err)
	}

	entries := p.expand()
	txnID := l.newTransactionID()
	for i := range entries {
		entries[i].ID = l.nextID
		entries[i].TransactionID = txnID
		l.nextID++
		l.route(entries[i])
	}
	log.Printf("post kind=%s txn=%s entries=%d amount=%s", p.Kind, txnID, len(entries), p.Amount)
	return entries, nil
}

// route appends an entry to the statement its category belongs to.
func (l *Ledger) route(e Entry) {
	if e.Category.Statement() == ProfitAndLoss {
		l.profitAndLoss = append(l.profitAndLoss, e)
	} else {
		l.balanceSheet = append(l.balanceSheet, e)
	}
}

// Load appends pre-existing entries (seed data or a decoded snapshot)
// keeping the id and transaction counters ahead of what it sees.
func (l *Ledger) Load(entries ...Entry) {
	for _, e := range entries {
		l.route(e)
		if e.ID >= l.nextID {
			l.nextID = e.ID + 1
		}
		var seq int
		if _, err := fmt.Sscanf(e.TransactionID, "txn_%d", &seq); err == nil && seq >= l.nextTxn {
			l.nextTxn = seq + 1
		}
	}
}

// ProfitAndLoss iterates over active Profit & Loss entries.
func (l *Ledger) ProfitAndLoss() iter.Seq[Entry] { return active(l.profitAndLoss) }

// BalanceSheet iterates over active Balance Sheet entries.
func (l *Ledger) BalanceSheet() iter.Seq[Entry] { return active(l.balanceSheet) }

func active(entries []Entry) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range entries {
			if e.Trashed() {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Statement iterates over the active entries of the given statement.
func (l *Ledger) Statement(kind StatementKind) iter.Seq[Entry] {
	if kind == ProfitAndLoss {
		return l.ProfitAndLoss()
	}
	return l.BalanceSheet()
}

// Transaction returns every entry, in both statements, sharing the
// given transaction id, regardless of lifecycle state.
func (l *Ledger) Transaction(txnID string) []Entry {
	var group []Entry
	for _, e := range l.profitAndLoss {
		if e.TransactionID == txnID {
			group = append(group, e)
		}
	}
	for _, e := range l.balanceSheet {
		if e.TransactionID == txnID {
			group = append(group, e)
		}
	}
	return group
}

// DeleteTransaction soft-deletes every entry of the group in one
// logical operation, never one statement only.
func (l *Ledger) DeleteTransaction(txnID string, by string) error {
	return l.mark(txnID, func(e *Entry) { e.markDeleted(by) })
}

// RestoreTransaction returns every entry of the group to the active state.
func (l *Ledger) RestoreTransaction(txnID string) error {
	return l.mark(txnID, func(e *Entry) { e.clear() })
}

func (l *Ledger) mark(txnID string, apply func(*Entry)) error {
	found := false
	for _, statement := range [][]Entry{l.profitAndLoss, l.balanceSheet} {
		for i := range statement {
			if statement[i].TransactionID == txnID {
				apply(&statement[i])
				found = true
			}
		}
	}
	if !found {
		return fmt.Errorf("unknown transaction %q", txnID)
	}
	return nil
}

// PurgeTransaction removes every entry of the group from both
// statements. The removal is irreversible.
func (l *Ledger) PurgeTransaction(txnID string) error {
	if len(l.Transaction(txnID)) == 0 {
		return fmt.Errorf("unknown transaction %q", txnID)
	}
	keep := func(entries []Entry) []Entry {
		out := entries[:0]
		for _, e := range entries {
			if e.TransactionID != txnID {
				out = append(out, e)
			}
		}
		return out
	}
	l.profitAndLoss = keep(l.profitAndLoss)
	l.balanceSheet = keep(l.balanceSheet)
	return nil
}

// TrashedTransactions returns the ids of groups with at least one
// trashed entry, in a stable order, with the attributed actor.
func (l *Ledger) TrashedTransactions() []TrashedGroup {
	seen := make(map[string]TrashedGroup)
	var order []string
	for _, statement := range [][]Entry{l.profitAndLoss, l.balanceSheet} {
		for _, e := range statement {
			if !e.Trashed() {
				continue
			}
			if _, ok := seen[e.TransactionID]; !ok {
				order = append(order, e.TransactionID)
			}
			g := seen[e.TransactionID]
			g.TransactionID = e.TransactionID
			g.DeletedBy = e.DeletedBy
			g.Entries = append(g.Entries, e)
			seen[e.TransactionID] = g
		}
	}
	sort.Strings(order)
	groups := make([]TrashedGroup, 0, len(order))
	for _, id := range order {
		groups = append(groups, seen[id])
	}
	return groups
}

// TrashedGroup is a soft-deleted transaction as shown in the trash view.
type TrashedGroup struct {
	TransactionID string
	DeletedBy     string
	Entries       []Entry
}

// sum accumulates active entries matching the predicate.
func (l *Ledger) sum(entries iter.Seq[Entry], accept func(Entry) bool) Money {
	var total Money
	for e := range entries {
		if accept(e) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalRevenue is the sum of active Revenue entries.
func (l *Ledger) TotalRevenue() Money {
	return l.sum(l.ProfitAndLoss(), func(e Entry) bool { return e.Category == Revenue })
}

// TotalExpenses is the sum of active Expense entries.
func (l *Ledger) TotalExpenses() Money {
	return l.sum(l.ProfitAndLoss(), func(e Entry) bool { return e.Category == Expense })
}

// NetProfit is revenue minus expenses.
func (l *Ledger) NetProfit() Money {
	return l.TotalRevenue().Sub(l.TotalExpenses())
}

// TotalAssets is the sum of active Asset entries.
func (l *Ledger) TotalAssets() Money {
	return l.sum(l.BalanceSheet(), func(e Entry) bool { return e.Category == Asset })
}

// TotalLiabilities is the sum of active Liability entries.
func (l *Ledger) TotalLiabilities() Money {
	return l.sum(l.BalanceSheet(), func(e Entry) bool { return e.Category == Liability })
}

// AccountBalance is the signed balance of one account across both
// statements, active entries only.
func (l *Ledger) AccountBalance(account string) Money {
	match := func(e Entry) bool { return strings.EqualFold(e.Account, account) }
	return l.sum(l.ProfitAndLoss(), match).Add(l.sum(l.BalanceSheet(), match))
}

// Accounts returns the distinct account names appearing in active
// entries, sorted.
func (l *Ledger) Accounts() []string {
	set := make(map[string]struct{})
	for e := range l.ProfitAndLoss() {
		set[e.Account] = struct{}{}
	}
	for e := range l.BalanceSheet() {
		set[e.Account] = struct{}{}
	}
	accounts := make([]string, 0, len(set))
	for a := range set {
		accounts = append(accounts, a)
	}
	sort.Strings(accounts)
	return accounts
}
