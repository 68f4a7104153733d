package backoffice

import (
	"reflect"
	"strings"
	"testing"
)

// login a deterministic actor so deletions carry an attribution.
func loginAdmin(t *testing.T, s *Store) {
	t.Helper()
	if !s.Login("Belreon3434", "Nabeel@2002", RealmAdmin) {
		t.Fatal("admin login failed")
	}
}

func TestDeleteRestore_IsLossless(t *testing.T) {
	s := NewDemoStore()
	loginAdmin(t, s)

	before, found := s.Client(1)
	if !found {
		t.Fatal("demo client 1 missing")
	}

	if err := s.Delete(KindClient, 1); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	for c := range s.Clients() {
		if c.ID == 1 {
			t.Error("trashed client still listed as active")
		}
	}
	trashed := s.TrashedClients()
	if len(trashed) != 1 || trashed[0].ID != 1 {
		t.Fatalf("TrashedClients() = %v, want client 1", trashed)
	}
	if trashed[0].DeletedBy != "Belreon3434" {
		t.Errorf("DeletedBy = %q, want the logged-in user", trashed[0].DeletedBy)
	}

	if err := s.Restore(KindClient, 1); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	after, _ := s.Client(1)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("restore is not the inverse of delete:\nbefore %+v\nafter  %+v", before, after)
	}
	if len(s.TrashedClients()) != 0 {
		t.Error("client still in the trash after restore")
	}
}

func TestDelete_AllKinds(t *testing.T) {
	s := NewDemoStore()
	loginAdmin(t, s)

	// One existing record per kind; user 2 is an employee.
	ids := map[Kind]int{
		KindClient:      2,
		KindUser:        2,
		KindStock:       1,
		KindNews:        1,
		KindTransaction: 1,
		KindFeature:     1,
	}
	for kind, id := range ids {
		if err := s.Delete(kind, id); err != nil {
			t.Errorf("Delete(%s, %d) failed: %v", kind, id, err)
		}
	}

	counts := map[Kind]int{
		KindClient:      len(s.TrashedClients()),
		KindUser:        len(s.TrashedUsers()),
		KindStock:       len(s.TrashedStocks()),
		KindNews:        len(s.TrashedNews()),
		KindTransaction: len(s.TrashedCashTransactions()),
		KindFeature:     len(s.TrashedAboutUsFeatures()),
	}
	for kind, count := range counts {
		if count != 1 {
			t.Errorf("%s trash holds %d records, want 1", kind, count)
		}
	}

	for kind, id := range ids {
		if err := s.Restore(kind, id); err != nil {
			t.Errorf("Restore(%s, %d) failed: %v", kind, id, err)
		}
	}
}

func TestDelete_PrimaryAdminIsProtected(t *testing.T) {
	s := NewDemoStore()
	loginAdmin(t, s)

	err := s.Delete(KindUser, 1)
	if err == nil {
		t.Fatal("the primary admin account could be deleted")
	}
	if !strings.Contains(err.Error(), "cannot be deleted") {
		t.Errorf("error = %v, want a cannot-be-deleted explanation", err)
	}
	if u, _ := s.User(1); u.Trashed() {
		t.Error("primary admin ended up trashed anyway")
	}
}

func TestDelete_AlreadyTrashedUpdatesAttribution(t *testing.T) {
	s := NewDemoStore()
	loginAdmin(t, s)
	if err := s.Delete(KindStock, 1); err != nil {
		t.Fatal(err)
	}

	// A different actor deletes again: not an error, attribution moves.
	if !s.Login("EmployeeOne", "password123", RealmAdmin) {
		t.Fatal("employee login failed")
	}
	if err := s.Delete(KindStock, 1); err != nil {
		t.Fatalf("second Delete() failed: %v", err)
	}
	trashed := s.TrashedStocks()
	if len(trashed) != 1 {
		t.Fatalf("trash holds %d stocks, want 1", len(trashed))
	}
	if trashed[0].DeletedBy != "EmployeeOne" {
		t.Errorf("DeletedBy = %q, want EmployeeOne", trashed[0].DeletedBy)
	}
}

func TestPurge_IsFinal(t *testing.T) {
	s := NewDemoStore()
	loginAdmin(t, s)

	if err := s.Purge(KindNews, 1); err != nil {
		t.Fatalf("Purge() failed: %v", err)
	}
	for n := range s.News() {
		if n.ID == 1 {
			t.Error("purged news still listed")
		}
	}
	if len(s.TrashedNews()) != 0 {
		t.Error("purged news ended up in the trash")
	}
	if err := s.Restore(KindNews, 1); err == nil {
		t.Error("a purged record could be restored")
	}
}

func TestLifecycle_UnknownKindOrID(t *testing.T) {
	s := NewDemoStore()
	loginAdmin(t, s)

	if err := s.Delete("gadget", 1); err == nil {
		t.Error("Delete() accepted an unknown kind")
	}
	if err := s.Delete(KindClient, 999); err == nil {
		t.Error("Delete() accepted an unknown id")
	}
	if err := s.Restore(KindClient, 999); err == nil {
		t.Error("Restore() accepted an unknown id")
	}
	if err := s.Purge(KindClient, 999); err == nil {
		t.Error("Purge() accepted an unknown id")
	}
}

func TestDelete_AnonymousAttribution(t *testing.T) {
	s := NewDemoStore()
	// Nobody logged in: attribution falls back to the system actor.
	if err := s.Delete(KindStock, 1); err != nil {
		t.Fatal(err)
	}
	trashed := s.TrashedStocks()
	if len(trashed) != 1 || trashed[0].DeletedBy != "System" {
		t.Errorf("DeletedBy = %q, want System", trashed[0].DeletedBy)
	}
}

func TestDeleteFinancialTransaction_UsesSessionActor(t *testing.T) {
	s := NewDemoStore()
	loginAdmin(t, s)

	if err := s.DeleteFinancialTransaction("txn_001"); err != nil {
		t.Fatalf("DeleteFinancialTransaction() failed: %v", err)
	}
	groups := s.Ledger().TrashedTransactions()
	if len(groups) != 1 {
		t.Fatalf("TrashedTransactions() = %d groups, want 1", len(groups))
	}
	if groups[0].DeletedBy != "Belreon3434" {
		t.Errorf("DeletedBy = %q, want the logged-in user", groups[0].DeletedBy)
	}
}
