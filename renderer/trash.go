package renderer

import (
	"github.com/belreon/backoffice"
)

// Trash renders the trash view as seen by the given viewer: each
// sub-section appears only if the viewer may see the owning dashboard
// section, and deleted financial transactions additionally need the
// financials section.
func Trash(s *backoffice.Store, viewer backoffice.User) string {
	r := newRenderer()
	r.Printf("# Trash\n\n")

	row := func(kind backoffice.Kind, id int, label, deletedBy string) {
		r.Printf("| %s | %d | %s | %s |\n", kind, id, cell(label), orDash(deletedBy))
	}
	header := func(title string) {
		r.Printf("## %s\n\n", title)
		r.Printf("| Kind | ID | Record | Deleted By |\n")
		r.Printf("|:---|:---|:---|:---|\n")
	}

	if backoffice.CanView(viewer, backoffice.KindClient.Section()) {
		if trashed := s.TrashedClients(); len(trashed) > 0 {
			header("Clients")
			for _, c := range trashed {
				row(backoffice.KindClient, c.ID, orDash(c.CompanyName), c.DeletedBy)
			}
			r.Printf("\n")
		}
	}
	if backoffice.CanView(viewer, backoffice.KindUser.Section()) {
		if trashed := s.TrashedUsers(); len(trashed) > 0 {
			header("Users")
			for _, u := range trashed {
				row(backoffice.KindUser, u.ID, u.Username, u.DeletedBy)
			}
			r.Printf("\n")
		}
	}
	if backoffice.CanView(viewer, backoffice.KindStock.Section()) {
		if trashed := s.TrashedStocks(); len(trashed) > 0 {
			header("Stocks")
			for _, st := range trashed {
				row(backoffice.KindStock, st.ID, st.Name, st.DeletedBy)
			}
			r.Printf("\n")
		}
	}
	if backoffice.CanView(viewer, backoffice.KindNews.Section()) {
		if trashed := s.TrashedNews(); len(trashed) > 0 {
			header("News")
			for _, n := range trashed {
				row(backoffice.KindNews, n.ID, n.Title, n.DeletedBy)
			}
			r.Printf("\n")
		}
	}
	if backoffice.CanView(viewer, backoffice.KindTransaction.Section()) {
		if trashed := s.TrashedCashTransactions(); len(trashed) > 0 {
			header("Cash Transactions")
			for _, t := range trashed {
				row(backoffice.KindTransaction, t.ID, t.Description, t.DeletedBy)
			}
			r.Printf("\n")
		}
	}
	if backoffice.CanView(viewer, backoffice.KindFeature.Section()) {
		if trashed := s.TrashedAboutUsFeatures(); len(trashed) > 0 {
			header("About Us Features")
			for _, f := range trashed {
				row(backoffice.KindFeature, f.ID, f.Title, f.DeletedBy)
			}
			r.Printf("\n")
		}
	}

	if backoffice.CanView(viewer, backoffice.SectionFinancials) {
		if groups := s.Ledger().TrashedTransactions(); len(groups) > 0 {
			r.Printf("## Financial Transactions\n\n")
			r.Printf("| Transaction | Entries | Deleted By |\n")
			r.Printf("|:---|:---|:---|\n")
			for _, g := range groups {
				r.Printf("| %s | %d | %s |\n", g.TransactionID, len(g.Entries), orDash(g.DeletedBy))
			}
			r.Printf("\n")
		}
	}

	if r.Len() == len("# Trash\n\n") {
		r.Printf("The trash is empty.\n")
	}
	return r.String()
}
