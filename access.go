package backoffice

// Section is the route prefix of one admin dashboard section. A user's
// navPermissions list holds section routes, or the "all" sentinel.
type Section string

const (
	SectionDashboard    Section = "/admin/dashboard"
	SectionClients      Section = "/admin/clients"
	SectionUsers        Section = "/admin/users"
	SectionFinancials   Section = "/admin/financials"
	SectionTransactions Section = "/admin/transactions"
	SectionDatabase     Section = "/admin/database"
	SectionNews         Section = "/admin/news"
	SectionAppModify    Section = "/admin/app-modify"
	SectionSettings     Section = "/admin/settings"
	SectionTrash        Section = "/admin/trash"
)

// PermissionAll is the wildcard sentinel granting every section.
const PermissionAll = "all"

// AllSections lists every admin section in navigation order.
func AllSections() []Section {
	return []Section{
		SectionDashboard,
		SectionClients,
		SectionUsers,
		SectionFinancials,
		SectionTransactions,
		SectionDatabase,
		SectionNews,
		SectionAppModify,
		SectionSettings,
		SectionTrash,
	}
}

// CanView reports whether the user may see the given section. The
// primary admin and the "all" sentinel see everything; otherwise the
// section route must be listed in the user's navPermissions. A user
// with no permissions sees nothing, not even the dashboard. The same
// predicate gates the navigation menu and the trash sub-sections.
func CanView(u User, section Section) bool {
	if u.Role == RolePrimaryAdmin {
		return true
	}
	for _, p := range u.NavPermissions {
		if p == PermissionAll || Section(p) == section {
			return true
		}
	}
	return false
}

// VisibleSections derives the navigation set for a user.
func VisibleSections(u User) []Section {
	var out []Section
	for _, section := range AllSections() {
		if CanView(u, section) {
			out = append(out, section)
		}
	}
	return out
}
