package backoffice

import (
	"reflect"
	"testing"
)

func TestCanView(t *testing.T) {
	testCases := []struct {
		name    string
		user    User
		section Section
		want    bool
	}{
		{
			name:    "primary admin sees everything regardless of its list",
			user:    User{Role: RolePrimaryAdmin, NavPermissions: []string{}},
			section: SectionSettings,
			want:    true,
		},
		{
			name:    "all sentinel grants any section",
			user:    User{Role: RoleEmployee, NavPermissions: []string{PermissionAll}},
			section: SectionTrash,
			want:    true,
		},
		{
			name:    "listed section is visible",
			user:    User{Role: RoleEmployee, NavPermissions: []string{string(SectionClients)}},
			section: SectionClients,
			want:    true,
		},
		{
			name:    "unlisted section is hidden",
			user:    User{Role: RoleEmployee, NavPermissions: []string{string(SectionClients)}},
			section: SectionUsers,
			want:    false,
		},
		{
			name:    "empty list sees nothing, not even the dashboard",
			user:    User{Role: RoleEmployee, NavPermissions: []string{}},
			section: SectionDashboard,
			want:    false,
		},
		{
			name:    "nil list sees nothing either",
			user:    User{Role: RoleEmployee},
			section: SectionDashboard,
			want:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanView(tc.user, tc.section); got != tc.want {
				t.Errorf("CanView(%v, %s) = %v, want %v", tc.user.NavPermissions, tc.section, got, tc.want)
			}
		})
	}
}

func TestVisibleSections(t *testing.T) {
	admin := User{Role: RolePrimaryAdmin}
	if got := VisibleSections(admin); !reflect.DeepEqual(got, AllSections()) {
		t.Errorf("primary admin VisibleSections() = %v, want all sections", got)
	}

	employee := User{Role: RoleEmployee, NavPermissions: []string{
		string(SectionClients), string(SectionDashboard),
	}}
	want := []Section{SectionDashboard, SectionClients}
	if got := VisibleSections(employee); !reflect.DeepEqual(got, want) {
		t.Errorf("VisibleSections() = %v, want %v in navigation order", got, want)
	}

	nobody := User{Role: RoleEmployee}
	if got := VisibleSections(nobody); len(got) != 0 {
		t.Errorf("VisibleSections() = %v for a user with no permissions, want none", got)
	}
}

func TestKindSection(t *testing.T) {
	testCases := []struct {
		kind Kind
		want Section
	}{
		{KindClient, SectionClients},
		{KindUser, SectionUsers},
		{KindStock, SectionAppModify},
		{KindFeature, SectionAppModify},
		{KindNews, SectionNews},
		{KindTransaction, SectionTransactions},
	}
	for _, tc := range testCases {
		if got := tc.kind.Section(); got != tc.want {
			t.Errorf("%s.Section() = %s, want %s", tc.kind, got, tc.want)
		}
	}
}
