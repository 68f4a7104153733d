package renderer

import (
	"github.com/belreon/backoffice"
)

// Clients renders the active client roster as the dashboard shows it.
func Clients(s *backoffice.Store) string {
	r := newRenderer()
	r.Printf("# Clients\n\n")
	r.Printf("| ID | Company | Contact | Email | Service | Submitted | Status |\n")
	r.Printf("|:---|:---|:---|:---|:---|:---|:---|\n")
	for c := range s.Clients() {
		submitted := "-"
		if !c.SubmissionDate.IsZero() {
			submitted = c.SubmissionDate.String()
		}
		r.Printf("| %d | %s | %s | %s | %s | %s | %s |\n",
			c.ID, cell(orDash(c.CompanyName)), cell(orDash(c.ContactPerson)),
			c.Email, cell(orDash(c.Service)), submitted, c.ProjectStatus)
	}
	return r.String()
}

// ClientDetail renders one client's full record, inquiry fields included.
func ClientDetail(c *backoffice.Client) string {
	r := newRenderer()
	r.Printf("# %s\n\n", orDash(c.CompanyName))
	field := func(name, value string) {
		r.Printf("- %s: %s\n", name, orDash(value))
	}
	field("User ID", c.UserID)
	field("Contact Person", c.ContactPerson)
	field("Email", c.Email)
	field("Phone", c.Phone)
	field("Address", c.Address)
	field("Service", c.Service)
	field("Project Description", c.ProjectDescription)
	field("Budget", c.Budget)
	field("Currency", c.Currency)
	field("Deadline", c.Deadline)
	field("Status", string(c.ProjectStatus))
	if !c.SubmissionDate.IsZero() {
		field("Submitted", c.SubmissionDate.String())
	}
	return r.String()
}

// Users renders the back-office accounts roster.
func Users(s *backoffice.Store) string {
	r := newRenderer()
	r.Printf("# Users\n\n")
	r.Printf("| ID | Username | Role | Status | Sections |\n")
	r.Printf("|:---|:---|:---|:---|:---|\n")
	for u := range s.Users() {
		sections := newRenderer()
		for i, sec := range backoffice.VisibleSections(u) {
			if i > 0 {
				sections.Printf(", ")
			}
			sections.Printf("%s", sec)
		}
		r.Printf("| %d | %s | %s | %s | %s |\n",
			u.ID, cell(u.Username), u.Role, u.Status, sections.String())
	}
	return r.String()
}
