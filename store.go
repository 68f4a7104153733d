package backoffice

import (
	"fmt"
	"iter"
	"log"
	"strings"

	"github.com/belreon/backoffice/date"
)

// Store is the single owner of every collection. All mutations go
// through its methods; callers never hold a mutable slice. There is one
// logical writer, mutations are applied synchronously.
type Store struct {
	clients  []Client
	users    []User
	stocks   []Stock
	news     []NewsItem
	cashbook []CashTransaction
	ledger   *Ledger
	aboutUs  AboutUsContent
	accounts ChartOfAccounts
	settings Settings

	session Actor // the current user pointer; Anonymous when logged out
}

// NewStore creates an empty store with no one logged in.
func NewStore() *Store {
	return &Store{
		ledger:  NewLedger(),
		session: Anonymous{},
		settings: Settings{
			Theme: "light",
		},
	}
}

// CurrentActor returns who is acting on the store.
func (s *Store) CurrentActor() Actor { return s.session }

// Ledger exposes the financial statements.
func (s *Store) Ledger() *Ledger { return s.ledger }

// ChartOfAccounts returns the account name lists offered by posting forms.
func (s *Store) ChartOfAccounts() ChartOfAccounts { return s.accounts }

// AboutUs returns the about-us aggregate.
func (s *Store) AboutUs() AboutUsContent { return s.aboutUs }

// Settings returns the branding settings.
func (s *Store) Settings() Settings { return s.settings }

// SetCompanyName updates the displayed company name.
func (s *Store) SetCompanyName(name string) { s.settings.CompanyName = name }

// SetCompanyLogo updates the company logo URL (or data URL).
func (s *Store) SetCompanyLogo(url string) { s.settings.CompanyLogo = url }

// SetTheme switches between the light and dark theme.
func (s *Store) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("unknown theme %q", theme)
	}
	s.settings.Theme = theme
	return nil
}

// activeSeq iterates the records of a collection that are not trashed.
func activeSeq[T any](items []T, trashed func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range items {
			if trashed(it) {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

// trashedOnly collects the records of a collection that are in the trash.
func trashedOnly[T any](items []T, trashed func(T) bool) []T {
	var out []T
	for _, it := range items {
		if trashed(it) {
			out = append(out, it)
		}
	}
	return out
}

// findByID applies a mutation to the record with the given id and
// reports whether it was found.
func findByID[T any](items []T, id int, idOf func(T) int, apply func(*T)) bool {
	for i := range items {
		if idOf(items[i]) == id {
			apply(&items[i])
			return true
		}
	}
	return false
}

// spliceByID removes the record with the given id from the collection.
func spliceByID[T any](items []T, id int, idOf func(T) int) ([]T, bool) {
	for i := range items {
		if idOf(items[i]) == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

// maxID returns the highest id in use, 0 for an empty collection.
func maxID[T any](items []T, idOf func(T) int) int {
	max := 0
	for _, it := range items {
		if idOf(it) > max {
			max = idOf(it)
		}
	}
	return max
}

// Clients iterates over active clients.
func (s *Store) Clients() iter.Seq[Client] {
	return activeSeq(s.clients, Client.Trashed)
}

// TrashedClients lists clients currently in the trash.
func (s *Store) TrashedClients() []Client { return trashedOnly(s.clients, Client.Trashed) }

// Client looks a client up by id, in any lifecycle state.
func (s *Store) Client(id int) (Client, bool) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// ClientByUserID looks a client up by portal user id.
func (s *Store) ClientByUserID(userID string) (Client, bool) {
	for _, c := range s.clients {
		if c.UserID == userID {
			return c, true
		}
	}
	return Client{}, false
}

// AddClient appends an admin-created client. The portal user id is
// derived from the company name when absent, capped at 15 characters.
func (s *Store) AddClient(c Client) Client {
	c.ID = maxID(s.clients, func(c Client) int { return c.ID }) + 1
	if c.UserID == "" {
		userID := strings.ReplaceAll(strings.ToLower(c.CompanyName), " ", "")
		if userID == "" {
			userID = fmt.Sprintf("client%d", c.ID)
		}
		if len(userID) > 15 {
			userID = userID[:15]
		}
		c.UserID = userID
	}
	c.ProjectStatus = StatusNew
	if c.SubmissionDate.IsZero() {
		c.SubmissionDate = date.Today()
	}
	c.Deletion = Deletion{}
	s.clients = append(s.clients, c)
	log.Printf("add-client id=%d company=%q", c.ID, c.CompanyName)
	return c
}

// SubmitInquiry fills the client's inquiry fields and moves a New
// client to Pending Approval. The submission date is stamped once.
func (s *Store) SubmitInquiry(clientID int, inq Inquiry) error {
	ok := findByID(s.clients, clientID, func(c Client) int { return c.ID }, func(c *Client) {
		if inq.Email != "" {
			c.Email = inq.Email
		}
		c.CompanyName = inq.CompanyName
		c.ContactPerson = inq.ContactPerson
		c.Phone = inq.Phone
		c.Address = inq.Address
		c.Service = inq.Service
		c.ProjectDescription = inq.ProjectDescription
		c.Budget = inq.Budget
		c.Currency = inq.Currency
		c.Deadline = inq.Deadline
		c.ProjectStatus = StatusPendingApproval
		if c.SubmissionDate.IsZero() {
			c.SubmissionDate = date.Today()
		}
		// Keep the session pointer fresh when a client edits itself.
		if actor, is := s.session.(ClientActor); is && actor.Client.ID == c.ID {
			s.session = ClientActor{Client: *c}
		}
	})
	if !ok {
		return fmt.Errorf("unknown client %d", clientID)
	}
	return nil
}

// UpdateClientStatus moves a client to the given project status.
func (s *Store) UpdateClientStatus(clientID int, status ProjectStatus) error {
	if _, err := ParseProjectStatus(string(status)); err != nil {
		return err
	}
	ok := findByID(s.clients, clientID, func(c Client) int { return c.ID },
		func(c *Client) { c.ProjectStatus = status })
	if !ok {
		return fmt.Errorf("unknown client %d", clientID)
	}
	return nil
}

// UpdateClient replaces the stored client with the same id. Lifecycle
// state is owned by the trash operations and is preserved.
func (s *Store) UpdateClient(updated Client) error {
	ok := findByID(s.clients, updated.ID, func(c Client) int { return c.ID }, func(c *Client) {
		updated.Deletion = c.Deletion
		*c = updated
	})
	if !ok {
		return fmt.Errorf("unknown client %d", updated.ID)
	}
	return nil
}

// Users iterates over active users.
func (s *Store) Users() iter.Seq[User] {
	return activeSeq(s.users, User.Trashed)
}

// TrashedUsers lists users currently in the trash.
func (s *Store) TrashedUsers() []User { return trashedOnly(s.users, User.Trashed) }

// User looks a user up by id, in any lifecycle state.
func (s *Store) User(id int) (User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// UserByName looks a user up by username.
func (s *Store) UserByName(username string) (User, bool) {
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

// AddUser appends a back-office account.
func (s *Store) AddUser(u User) User {
	u.ID = maxID(s.users, func(u User) int { return u.ID }) + 1
	u.Deletion = Deletion{}
	s.users = append(s.users, u)
	log.Printf("add-user id=%d username=%q role=%q", u.ID, u.Username, u.Role)
	return u
}

// UpdateUser replaces the stored user with the same id. An empty
// password in the update keeps the existing one. The primary admin
// account is immutable.
func (s *Store) UpdateUser(updated User) error {
	existing, found := s.User(updated.ID)
	if !found {
		return fmt.Errorf("unknown user %d", updated.ID)
	}
	if existing.Role == RolePrimaryAdmin {
		return fmt.Errorf("user %q is the primary admin and cannot be modified", existing.Username)
	}
	findByID(s.users, updated.ID, func(u User) int { return u.ID }, func(u *User) {
		if updated.Password == "" {
			updated.Password = u.Password
		}
		updated.Deletion = u.Deletion
		*u = updated
	})
	return nil
}

// Stocks iterates over active stock recommendations.
func (s *Store) Stocks() iter.Seq[Stock] {
	return activeSeq(s.stocks, Stock.Trashed)
}

// TrashedStocks lists stocks currently in the trash.
func (s *Store) TrashedStocks() []Stock { return trashedOnly(s.stocks, Stock.Trashed) }

// Stock looks a stock up by id, in any lifecycle state.
func (s *Store) Stock(id int) (Stock, bool) {
	for _, st := range s.stocks {
		if st.ID == id {
			return st, true
		}
	}
	return Stock{}, false
}

// AddStock appends a stock recommendation.
func (s *Store) AddStock(st Stock) Stock {
	st.ID = maxID(s.stocks, func(st Stock) int { return st.ID }) + 1
	st.Deletion = Deletion{}
	s.stocks = append(s.stocks, st)
	return st
}

// UpdateStock replaces the stored stock with the same id.
func (s *Store) UpdateStock(updated Stock) error {
	ok := findByID(s.stocks, updated.ID, func(st Stock) int { return st.ID }, func(st *Stock) {
		updated.Deletion = st.Deletion
		*st = updated
	})
	if !ok {
		return fmt.Errorf("unknown stock %d", updated.ID)
	}
	return nil
}

// News iterates over active news items.
func (s *Store) News() iter.Seq[NewsItem] {
	return activeSeq(s.news, NewsItem.Trashed)
}

// TrashedNews lists news items currently in the trash.
func (s *Store) TrashedNews() []NewsItem { return trashedOnly(s.news, NewsItem.Trashed) }

// AddNews appends a news item.
func (s *Store) AddNews(n NewsItem) NewsItem {
	n.ID = maxID(s.news, func(n NewsItem) int { return n.ID }) + 1
	n.Deletion = Deletion{}
	s.news = append(s.news, n)
	return n
}

// UpdateNews replaces the stored news item with the same id.
func (s *Store) UpdateNews(updated NewsItem) error {
	ok := findByID(s.news, updated.ID, func(n NewsItem) int { return n.ID }, func(n *NewsItem) {
		updated.Deletion = n.Deletion
		*n = updated
	})
	if !ok {
		return fmt.Errorf("unknown news item %d", updated.ID)
	}
	return nil
}

// CashBook iterates over active cash transactions.
func (s *Store) CashBook() iter.Seq[CashTransaction] {
	return activeSeq(s.cashbook, CashTransaction.Trashed)
}

// TrashedCashTransactions lists cash rows currently in the trash.
func (s *Store) TrashedCashTransactions() []CashTransaction {
	return trashedOnly(s.cashbook, CashTransaction.Trashed)
}

// AddCashTransaction appends a cash book row.
func (s *Store) AddCashTransaction(t CashTransaction) CashTransaction {
	t.ID = maxID(s.cashbook, func(t CashTransaction) int { return t.ID }) + 1
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	t.Deletion = Deletion{}
	s.cashbook = append(s.cashbook, t)
	return t
}

// UpdateAboutUs replaces the about-us aggregate wholesale, as the
// editor submits the entire form. Trashed features keep their state.
func (s *Store) UpdateAboutUs(content AboutUsContent) {
	for i := range content.Features {
		if existing, ok := s.aboutUsFeature(content.Features[i].ID); ok {
			content.Features[i].Deletion = existing.Deletion
		}
	}
	s.aboutUs = content
}

func (s *Store) aboutUsFeature(id int) (AboutUsFeature, bool) {
	for _, f := range s.aboutUs.Features {
		if f.ID == id {
			return f, true
		}
	}
	return AboutUsFeature{}, false
}

// ActiveAboutUsFeatures returns the visible feature cards.
func (s *Store) ActiveAboutUsFeatures() []AboutUsFeature {
	var out []AboutUsFeature
	for _, f := range s.aboutUs.Features {
		if !f.Trashed() {
			out = append(out, f)
		}
	}
	return out
}

// TrashedAboutUsFeatures lists feature cards currently in the trash.
func (s *Store) TrashedAboutUsFeatures() []AboutUsFeature {
	return trashedOnly(s.aboutUs.Features, AboutUsFeature.Trashed)
}

// PostTransaction posts a business transaction into the statements.
func (s *Store) PostTransaction(p Posting) ([]Entry, error) {
	return s.ledger.Post(p)
}

// DeleteFinancialTransaction soft-deletes a whole entry group,
// attributed to the current actor.
func (s *Store) DeleteFinancialTransaction(txnID string) error {
	return s.ledger.DeleteTransaction(txnID, s.session.DisplayName())
}
