package backoffice

import (
	"strings"
	"testing"
)

func TestAddClient_DerivesUserID(t *testing.T) {
	testCases := []struct {
		name        string
		client      Client
		wantUserID  string
		description string
	}{
		{
			name:       "lowercased without spaces",
			client:     Client{CompanyName: "Acme Corp", Email: "x@acme.com"},
			wantUserID: "acmecorp",
		},
		{
			name:       "capped at 15 characters",
			client:     Client{CompanyName: "A Very Long Company Name Indeed", Email: "x@long.com"},
			wantUserID: "averylongcompan",
		},
		{
			name:       "explicit user id wins",
			client:     Client{CompanyName: "Acme Corp", UserID: "custom", Email: "x@acme.com"},
			wantUserID: "custom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewDemoStore()
			got := s.AddClient(tc.client)
			if got.UserID != tc.wantUserID {
				t.Errorf("UserID = %q, want %q", got.UserID, tc.wantUserID)
			}
			if got.ProjectStatus != StatusNew {
				t.Errorf("ProjectStatus = %q, want %q", got.ProjectStatus, StatusNew)
			}
			if got.ID != 7 {
				t.Errorf("ID = %d, want the next free id 7", got.ID)
			}
		})
	}
}

func TestUpdateClient_PreservesLifecycle(t *testing.T) {
	s := NewDemoStore()
	loginAdmin(t, s)
	if err := s.Delete(KindClient, 1); err != nil {
		t.Fatal(err)
	}

	c, _ := s.Client(1)
	c.ContactPerson = "New Contact"
	c.Deletion = Deletion{} // an update must not resurrect the record
	if err := s.UpdateClient(c); err != nil {
		t.Fatal(err)
	}

	after, _ := s.Client(1)
	if after.ContactPerson != "New Contact" {
		t.Error("update was not applied")
	}
	if !after.Trashed() {
		t.Error("update cleared the lifecycle state")
	}
	if after.DeletedBy != "Belreon3434" {
		t.Errorf("DeletedBy = %q, want Belreon3434", after.DeletedBy)
	}
}

func TestUpdateUser(t *testing.T) {
	s := NewDemoStore()

	t.Run("empty password keeps the old one", func(t *testing.T) {
		u, _ := s.User(2)
		u.Password = ""
		u.Permissions = []string{"Reporting"}
		if err := s.UpdateUser(u); err != nil {
			t.Fatal(err)
		}
		after, _ := s.User(2)
		if after.Password != "password123" {
			t.Errorf("Password = %q, want the original", after.Password)
		}
		if len(after.Permissions) != 1 || after.Permissions[0] != "Reporting" {
			t.Error("other fields were not updated")
		}
	})

	t.Run("primary admin is immutable", func(t *testing.T) {
		u, _ := s.User(1)
		u.Username = "Hacked"
		err := s.UpdateUser(u)
		if err == nil {
			t.Fatal("the primary admin account could be modified")
		}
		if !strings.Contains(err.Error(), "cannot be modified") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if err := s.UpdateUser(User{ID: 99}); err == nil {
			t.Error("UpdateUser() accepted an unknown id")
		}
	})
}

func TestUpdateAboutUs_PreservesFeatureLifecycle(t *testing.T) {
	s := NewDemoStore()
	loginAdmin(t, s)
	if err := s.Delete(KindFeature, 2); err != nil {
		t.Fatal(err)
	}

	content := s.AboutUs()
	content.Heading = "New Heading"
	for i := range content.Features {
		// A full rewrite from the edit form carries no lifecycle state.
		content.Features[i].Deletion = Deletion{}
	}
	s.UpdateAboutUs(content)

	if got := s.AboutUs().Heading; got != "New Heading" {
		t.Errorf("Heading = %q, want New Heading", got)
	}
	active := s.ActiveAboutUsFeatures()
	if len(active) != 2 {
		t.Errorf("%d active features, want 2", len(active))
	}
	trashed := s.TrashedAboutUsFeatures()
	if len(trashed) != 1 || trashed[0].ID != 2 {
		t.Fatalf("trashed features = %v, want feature 2", trashed)
	}
	if trashed[0].DeletedBy != "Belreon3434" {
		t.Errorf("DeletedBy = %q, want Belreon3434", trashed[0].DeletedBy)
	}
}

func TestSetTheme(t *testing.T) {
	s := NewDemoStore()
	if err := s.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme(dark) failed: %v", err)
	}
	if got := s.Settings().Theme; got != "dark" {
		t.Errorf("Theme = %q, want dark", got)
	}
	if err := s.SetTheme("sepia"); err == nil {
		t.Error("SetTheme(sepia) succeeded, want error")
	}
}

func TestAddCashTransaction_AssignsNextID(t *testing.T) {
	s := NewDemoStore()
	got := s.AddCashTransaction(CashTransaction{
		Description: "New payment", Type: Inflow, Amount: usd(100),
	})
	if got.ID != 7 {
		t.Errorf("ID = %d, want 7", got.ID)
	}
	var count int
	for range s.CashBook() {
		count++
	}
	if count != 7 {
		t.Errorf("cash book has %d rows, want 7", count)
	}
}

func TestDemoStore_Dataset(t *testing.T) {
	s := NewDemoStore()

	countStocks := 0
	for range s.Stocks() {
		countStocks++
	}
	countNews := 0
	for range s.News() {
		countNews++
	}
	countCash := 0
	for range s.CashBook() {
		countCash++
	}
	counts := []struct {
		name string
		got  int
		want int
	}{
		{"clients", len(collectClients(s)), 6},
		{"stocks", countStocks, 4},
		{"news", countNews, 3},
		{"cash book", countCash, 6},
		{"about-us features", len(s.ActiveAboutUsFeatures()), 3},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	ledger := s.Ledger()
	totals := []struct {
		name string
		got  Money
		want Money
	}{
		{"TotalRevenue", ledger.TotalRevenue(), usd(55000)},
		{"TotalExpenses", ledger.TotalExpenses(), usd(29200)},
		{"NetProfit", ledger.NetProfit(), usd(25800)},
		{"TotalAssets", ledger.TotalAssets(), usd(173800)},
		{"TotalLiabilities", ledger.TotalLiabilities(), usd(148000)},
	}
	for _, c := range totals {
		if !c.got.Equal(c.want) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}

	// Seeded entries must not collide with freshly posted ones.
	entries, err := s.PostTransaction(Posting{
		Kind: Income, Amount: usd(100), RevenueAccount: "Service Revenue", ToAccount: "Cash in Bank",
	})
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].ID != 23 {
		t.Errorf("next entry id = %d, want 23", entries[0].ID)
	}
	if entries[0].TransactionID != "txn_012" {
		t.Errorf("next transaction id = %q, want txn_012", entries[0].TransactionID)
	}
}
