package renderer

import (
	"github.com/belreon/backoffice"
)

// Stocks renders the published stock recommendations.
func Stocks(s *backoffice.Store) string {
	r := newRenderer()
	r.Printf("# Stock Recommendations\n\n")
	r.Printf("| ID | Name | Ticker | Current | Target | Intrinsic | Demo |\n")
	r.Printf("|:---|:---|:---|---:|---:|---:|:---|\n")
	for st := range s.Stocks() {
		demo := ""
		if st.IsDemo {
			demo = "yes"
		}
		r.Printf("| %d | %s | %s | %s %.2f | %s %.2f | %s %.2f | %s |\n",
			st.ID, cell(st.Name), st.Ticker,
			st.Currency, st.CurrentPrice,
			st.Currency, st.TargetPrice,
			st.Currency, st.IntrinsicValue,
			demo)
	}
	return r.String()
}

// News renders the published market news cards.
func News(s *backoffice.Store) string {
	r := newRenderer()
	r.Printf("# Market News\n\n")
	for n := range s.News() {
		r.Printf("## %s (%s)\n\n", cell(n.Title), n.Date)
		r.Printf("%s\n\n", n.Summary)
		if n.URL != "" {
			r.Printf("[Read more](%s)\n\n", n.URL)
		}
	}
	return r.String()
}

// CashBook renders the cash book with its running totals.
func CashBook(s *backoffice.Store) string {
	r := newRenderer()
	r.Printf("# Cash Book\n\n")
	r.Printf("| ID | Date | Description | Client/Vendor | Type | Amount |\n")
	r.Printf("|:---|:---|:---|:---|:---|---:|\n")
	var in, out backoffice.Money
	for t := range s.CashBook() {
		r.Printf("| %d | %s | %s | %s | %s | %s |\n",
			t.ID, t.Date, cell(t.Description), cell(t.ClientVendor), t.Type, t.Amount)
		if t.Type == backoffice.Inflow {
			in = in.Add(t.Amount)
		} else {
			out = out.Add(t.Amount.Abs())
		}
	}
	r.Printf("\n")
	r.Printf("- Total Inflow: %s\n", in)
	r.Printf("- Total Outflow: %s\n", out)
	r.Printf("- Net: %s\n", in.Sub(out))
	return r.String()
}

// AboutUs renders the editable "about us" section content.
func AboutUs(s *backoffice.Store) string {
	r := newRenderer()
	content := s.AboutUs()
	r.Printf("# %s\n\n", cell(content.Heading))
	r.Printf("%s\n\n", content.Paragraph)
	for _, f := range s.ActiveAboutUsFeatures() {
		r.Printf("- **%s**: %s\n", cell(f.Title), cell(f.Description))
	}
	return r.String()
}
