package backoffice

import (
	"strings"
	"testing"
)

func TestExportClientsCSV(t *testing.T) {
	s := NewDemoStore()
	export := s.ExportClientsCSV()

	if export.Filename != "clients_export.csv" {
		t.Errorf("Filename = %q, want clients_export.csv", export.Filename)
	}
	if !strings.HasPrefix(export.URI, "data:text/csv;charset=utf-8,") {
		t.Fatalf("URI does not carry the csv data prefix: %q", export.URI[:40])
	}

	payload := strings.TrimPrefix(export.URI, "data:text/csv;charset=utf-8,")
	lines := strings.Split(payload, "%0A")
	if len(lines) != 7 { // header + 6 active clients
		t.Fatalf("export has %d lines, want 7", len(lines))
	}
	if lines[0] != "Company%20Name,Contact%20Person,Email,Stock/Service,Submission%20Date,Project%20Status" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Innovate%20Corp") {
		t.Errorf("first row = %q, want Innovate Corp", lines[1])
	}
	// The bare-profile client exports dashes for its empty fields.
	if !strings.Contains(lines[6], "-,-,new.client@example.com") {
		t.Errorf("last row = %q, want dashed optional fields", lines[6])
	}
	// Commas inside values are deliberately not escaped; the project
	// status keeps its literal space escaping only.
	if strings.Contains(payload, "%2C") {
		t.Error("export escapes commas, the wire format must keep them bare")
	}
}

func TestExportClientsCSV_SkipsTrashed(t *testing.T) {
	s := NewDemoStore()
	loginAdmin(t, s)
	if err := s.Delete(KindClient, 1); err != nil {
		t.Fatal(err)
	}
	export := s.ExportClientsCSV()
	if strings.Contains(export.URI, "Innovate%20Corp") {
		t.Error("trashed client still present in the export")
	}
}

func TestExportStatementCSV(t *testing.T) {
	s := NewDemoStore()

	pnl := s.ExportStatementCSV(ProfitAndLoss)
	if pnl.Filename != "profit-and-loss.csv" {
		t.Errorf("Filename = %q, want profit-and-loss.csv", pnl.Filename)
	}
	payload := strings.TrimPrefix(pnl.URI, "data:text/csv;charset=utf-8,")
	lines := strings.Split(payload, "%0A")
	if len(lines) != 8 { // header + 7 seeded entries
		t.Fatalf("export has %d lines, want 8", len(lines))
	}
	if lines[0] != "Date,Account,Description,Category,Amount" {
		t.Errorf("header = %q", lines[0])
	}
	// Amounts are raw decimal values, not currency-formatted.
	if !strings.HasSuffix(lines[1], ",25000") {
		t.Errorf("first row = %q, want a raw 25000 amount", lines[1])
	}

	balance := s.ExportStatementCSV(BalanceSheet)
	if balance.Filename != "balance-sheet.csv" {
		t.Errorf("Filename = %q, want balance-sheet.csv", balance.Filename)
	}
	if !strings.Contains(balance.URI, "-50000") {
		t.Error("balance export lost the signed amounts")
	}
}

func TestImportClients(t *testing.T) {
	s := NewDemoStore()
	input := `{
	  "exportedAt": "2025-08-20",
	  "clients": [
	    {"email": "ada@newco.com", "companyName": "NewCo", "contactPerson": "Ada", "phone": "123", "service": "Analysis"},
	    {"companyName": "No Email Inc."},
	    {"email": "bob@other.com", "companyName": "Other Ltd"}
	  ]
	}`

	count, err := s.ImportClients(strings.NewReader(input), "$.clients")
	if err != nil {
		t.Fatalf("ImportClients() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("imported %d clients, want 2 (the email-less record is skipped)", count)
	}

	c, found := s.ClientByUserID("newco")
	if !found {
		t.Fatal("imported client not found by its derived user id")
	}
	if c.ContactPerson != "Ada" || c.Service != "Analysis" {
		t.Errorf("imported fields lost: %+v", c)
	}
	if c.ProjectStatus != StatusNew {
		t.Errorf("imported client status = %q, want %q", c.ProjectStatus, StatusNew)
	}
}

func TestImportClients_Errors(t *testing.T) {
	s := NewDemoStore()
	if _, err := s.ImportClients(strings.NewReader("not json"), "$"); err == nil {
		t.Error("ImportClients() accepted invalid json")
	}
	if _, err := s.ImportClients(strings.NewReader("{}"), "$.missing[*]"); err == nil {
		t.Error("ImportClients() accepted a jsonpath matching nothing")
	}
}
