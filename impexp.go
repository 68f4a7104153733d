package backoffice

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// CSVExport is a downloadable CSV artifact: a file name and the
// data:text/csv URI holding the whole payload.
type CSVExport struct {
	Filename string
	URI      string
}

// csvDataURI joins the table with bare commas, exactly as the site
// exports it. Field values containing commas are not escaped; that is
// the historical wire format and consumers rely on it as-is.
func csvDataURI(headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, r := range rows {
		lines = append(lines, strings.Join(r, ","))
	}
	payload := strings.Join(lines, "\n")
	// The same minimal escaping a browser's encodeURI applies to the
	// characters that actually occur in our data.
	escaper := strings.NewReplacer("%", "%25", " ", "%20", "\n", "%0A", "\"", "%22")
	return "data:text/csv;charset=utf-8," + escaper.Replace(payload)
}

// orDash substitutes "-" for empty optional fields in exports.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ExportClientsCSV exports the active client roster.
func (s *Store) ExportClientsCSV() CSVExport {
	headers := []string{"Company Name", "Contact Person", "Email", "Stock/Service", "Submission Date", "Project Status"}
	var rows [][]string
	for c := range s.Clients() {
		submission := "-"
		if !c.SubmissionDate.IsZero() {
			submission = c.SubmissionDate.String()
		}
		rows = append(rows, []string{
			orDash(c.CompanyName),
			orDash(c.ContactPerson),
			c.Email,
			orDash(c.Service),
			submission,
			string(c.ProjectStatus),
		})
	}
	return CSVExport{Filename: "clients_export.csv", URI: csvDataURI(headers, rows)}
}

// ExportStatementCSV exports the active entries of one statement.
func (s *Store) ExportStatementCSV(kind StatementKind) CSVExport {
	headers := []string{"Date", "Account", "Description", "Category", "Amount"}
	var rows [][]string
	for e := range s.ledger.Statement(kind) {
		rows = append(rows, []string{
			e.Date.String(),
			e.Account,
			e.Description,
			string(e.Category),
			e.Amount.Decimal().String(),
		})
	}
	return CSVExport{Filename: kind.String() + ".csv", URI: csvDataURI(headers, rows)}
}

// ImportClients reads a foreign JSON export and appends the clients it
// finds at the given jsonpath (e.g. "$.clients"). Records missing an
// email are skipped. Returns how many clients were appended.
func (s *Store) ImportClients(r io.Reader, path string) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("cannot read import: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return 0, fmt.Errorf("import is not valid json: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("jsonpath %q failed: %w", path, err)
	}
	records, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a single answer.
		records = []any{jval}
	}

	str := func(rec map[string]any, key string) string {
		if v, ok := rec[key].(string); ok {
			return v
		}
		return ""
	}

	count := 0
	for _, item := range records {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		email := str(rec, "email")
		if email == "" {
			continue
		}
		s.AddClient(Client{
			Email:         email,
			CompanyName:   str(rec, "companyName"),
			ContactPerson: str(rec, "contactPerson"),
			Phone:         str(rec, "phone"),
			Service:       str(rec, "service"),
		})
		count++
	}
	return count, nil
}
