package backoffice

import (
	"fmt"

	"github.com/belreon/backoffice/date"
)

// ProjectStatus is the stage of a client engagement.
type ProjectStatus string

const (
	StatusNew             ProjectStatus = "New"
	StatusPendingApproval ProjectStatus = "Pending Approval"
	StatusInProgress      ProjectStatus = "In Progress"
	StatusCompleted       ProjectStatus = "Completed"
	StatusRejected        ProjectStatus = "Rejected"
)

// ParseProjectStatus parses a string into a ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case StatusNew, StatusPendingApproval, StatusInProgress, StatusCompleted, StatusRejected:
		return ProjectStatus(s), nil
	default:
		return "", fmt.Errorf("unknown project status: %q", s)
	}
}

// Role identifies the privilege class of a back-office user.
type Role string

const (
	RolePrimaryAdmin Role = "Primary Admin"
	RoleEmployee     Role = "Employee"
)

// UserStatus enables or disables a back-office account without deleting it.
type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserDisabled UserStatus = "Disabled"
)

// FlowType is the direction of a cash book row.
type FlowType string

const (
	Inflow  FlowType = "Inflow"
	Outflow FlowType = "Outflow"
)

// Client is a prospect or customer record. Registration creates it with
// only credentials and email; the inquiry form fills the rest.
type Client struct {
	ID                 int           `json:"id"`
	UserID             string        `json:"userId"`
	Password           string        `json:"password,omitempty"`
	Email              string        `json:"email"`
	CompanyName        string        `json:"companyName"`
	ContactPerson      string        `json:"contactPerson"`
	ProjectStatus      ProjectStatus `json:"projectStatus"`
	SubmissionDate     date.Date     `json:"submissionDate,omitzero"`
	Phone              string        `json:"phone,omitempty"`
	Address            string        `json:"address,omitempty"`
	Service            string        `json:"service,omitempty"`
	ProjectDescription string        `json:"projectDescription,omitempty"`
	Budget             string        `json:"budget,omitempty"`
	Currency           string        `json:"currency,omitempty"`
	Deadline           string        `json:"deadline,omitempty"`
	Deletion
}

// Inquiry carries the optional fields a client submits after registering.
type Inquiry struct {
	Email              string
	CompanyName        string
	ContactPerson      string
	Phone              string
	Address            string
	Service            string
	ProjectDescription string
	Budget             string
	Currency           string
	Deadline           string
}

// User is a back-office account.
type User struct {
	ID             int        `json:"id"`
	Username       string     `json:"username"`
	Password       string     `json:"password,omitempty"`
	Role           Role       `json:"role"`
	Permissions    []string   `json:"permissions"`
	NavPermissions []string   `json:"navPermissions"`
	Status         UserStatus `json:"status"`
	Deletion
}

// CashTransaction is one row of the simple cash book, independent from
// the double-entry statements.
type CashTransaction struct {
	ID           int       `json:"id"`
	Date         date.Date `json:"date"`
	Description  string    `json:"description"`
	ClientVendor string    `json:"clientVendor"`
	Type         FlowType  `json:"type"`
	Amount       Money     `json:"amount"`
	Deletion
}

// Stock is a published recommendation. Prices are display values, not
// ledger amounts.
type Stock struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Ticker          string  `json:"ticker"`
	Description     string  `json:"description"`
	ImageURL        string  `json:"imageUrl"`
	CurrentPrice    float64 `json:"currentPrice"`
	TargetPrice     float64 `json:"targetPrice"`
	IntrinsicValue  float64 `json:"intrinsicValue"`
	Ratios          string  `json:"ratios"`
	Currency        string  `json:"currency"`
	IsDemo          bool    `json:"isDemo"`
	NewsLink        string  `json:"newsLink,omitempty"`
	ChartLink       string  `json:"chartLink,omitempty"`
	TradingViewLink string  `json:"tradingViewLink,omitempty"`
	Deletion
}

// NewsItem is a published market news card.
type NewsItem struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Date     date.Date `json:"date"`
	ImageURL string    `json:"imageUrl,omitempty"`
	URL      string    `json:"url,omitempty"`
	Deletion
}

// AboutUsFeature is one card of the "about us" section. It follows the
// same lifecycle as top-level records even though it lives inside the
// AboutUsContent aggregate.
type AboutUsFeature struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deletion
}

// AboutUsContent is the editable "about us" aggregate.
type AboutUsContent struct {
	MainImages []string         `json:"mainImages"`
	Heading    string           `json:"heading"`
	Paragraph  string           `json:"paragraph"`
	Features   []AboutUsFeature `json:"features"`
}

// ChartOfAccounts lists the account names offered by the posting form.
// Free-text account names are still accepted on posting.
type ChartOfAccounts struct {
	Assets      []string `json:"assets"`
	Liabilities []string `json:"liabilities"`
	Equity      []string `json:"equity"`
	Revenue     []string `json:"revenue"`
	Expenses    []string `json:"expenses"`
}

// Settings holds the site-wide branding knobs.
type Settings struct {
	CompanyName string `json:"companyName"`
	CompanyLogo string `json:"companyLogo"`
	Theme       string `json:"theme"`
}
