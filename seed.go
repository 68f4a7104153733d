package backoffice

import "github.com/belreon/backoffice/date"

// NewDemoStore builds the store preloaded with the demo dataset the
// site ships with.
func NewDemoStore() *Store {
	s := NewStore()

	s.settings = Settings{
		CompanyName: "Belreon",
		CompanyLogo: "https://image2url.com/images/1755352385981-db5dd9de-70de-4e0b-a458-8588a342a9c8.jpg",
		Theme:       "light",
	}

	s.clients = []Client{
		{ID: 1, UserID: "innovate", Password: "password", CompanyName: "Innovate Corp", ContactPerson: "John Doe", Email: "john.doe@innovatecorp.com", Service: "Tech Growth Portfolio", ProjectStatus: StatusCompleted, SubmissionDate: date.MustParse("2025-07-15")},
		{ID: 2, UserID: "future", Password: "password", CompanyName: "Future Solutions Ltd.", ContactPerson: "Jane Smith", Email: "j.smith@futuresolutions.com", Service: "Energy Sector Analysis", ProjectStatus: StatusInProgress, SubmissionDate: date.MustParse("2025-08-01")},
		{ID: 3, UserID: "global", Password: "password", CompanyName: "Global Ventures", ContactPerson: "Sam Wilson", Email: "sam.w@globalventures.net", Service: "Blue Chip Dividend", ProjectStatus: StatusInProgress, SubmissionDate: date.MustParse("2025-08-05")},
		{ID: 4, UserID: "datasys", Password: "password", CompanyName: "Data Systems LLC", ContactPerson: "Emily White", Email: "emily.w@datasystems.com", Service: "Tech Growth Portfolio", ProjectStatus: StatusPendingApproval, SubmissionDate: date.MustParse("2025-08-10")},
		{ID: 5, UserID: "creative", Password: "password", CompanyName: "Creative Minds", ContactPerson: "Michael Brown", Email: "mbrown@creative.com", Service: "Mid-Cap Value", ProjectStatus: StatusCompleted, SubmissionDate: date.MustParse("2025-06-20")},
		{ID: 6, UserID: "newclient", Password: "password", Email: "new.client@example.com", ProjectStatus: StatusNew, SubmissionDate: date.MustParse("2025-08-12")},
	}

	s.users = []User{
		{ID: 1, Username: "Belreon3434", Password: "Nabeel@2002", Role: RolePrimaryAdmin, Permissions: []string{"All Access"}, NavPermissions: []string{PermissionAll}, Status: UserActive},
		{ID: 2, Username: "EmployeeOne", Password: "password123", Role: RoleEmployee, Permissions: []string{"Financial Modelling"}, NavPermissions: []string{string(SectionDashboard), string(SectionClients)}, Status: UserActive},
		{ID: 3, Username: "EmployeeTwo", Password: "password123", Role: RoleEmployee, Permissions: []string{"HR Consulting", "Business Analytics"}, NavPermissions: []string{string(SectionDashboard), string(SectionClients), string(SectionUsers)}, Status: UserActive},
		{ID: 4, Username: "ExitingEmployee", Password: "password123", Role: RoleEmployee, Permissions: []string{"Data Analytics"}, NavPermissions: []string{}, Status: UserDisabled},
	}

	s.cashbook = []CashTransaction{
		{ID: 1, Date: date.MustParse("2025-08-12"), Description: "Payment for Tech Portfolio Analysis", ClientVendor: "Innovate Corp", Type: Inflow, Amount: M(15000, "USD")},
		{ID: 2, Date: date.MustParse("2025-08-11"), Description: "Bloomberg Terminal Subscription", ClientVendor: "Bloomberg LP", Type: Outflow, Amount: M(-500, "USD")},
		{ID: 3, Date: date.MustParse("2025-08-10"), Description: "Payment for Dividend Strategy", ClientVendor: "Global Ventures", Type: Inflow, Amount: M(8500, "USD")},
		{ID: 4, Date: date.MustParse("2025-08-09"), Description: "Office Supplies", ClientVendor: "Office Depot", Type: Outflow, Amount: M(-250, "USD")},
		{ID: 5, Date: date.MustParse("2025-08-05"), Description: "Cloud Server Costs", ClientVendor: "AWS", Type: Outflow, Amount: M(-150, "USD")},
		{ID: 6, Date: date.MustParse("2025-08-01"), Description: "Payment for Energy Sector Research", ClientVendor: "Future Solutions Ltd.", Type: Inflow, Amount: M(12000, "USD")},
	}

	s.stocks = []Stock{
		{
			ID:              1,
			ImageURL:        "https://images.unsplash.com/photo-1611974765270-ca12586343bb?q=80&w=2940&auto=format&fit=crop",
			Name:            "Tech Giant Corp",
			Ticker:          "TGC",
			Description:     "Strong market leader in AI and cloud computing. Robust balance sheet with significant cash reserves.",
			CurrentPrice:    145.50,
			TargetPrice:     180.00,
			IntrinsicValue:  165.20,
			Ratios:          "P/E: 25.4\nPEG: 1.2\nROE: 35%",
			Currency:        "USD",
			IsDemo:          true,
			NewsLink:        "https://finance.yahoo.com/quote/AAPL",
			ChartLink:       "https://images.unsplash.com/photo-1611974765270-ca12586343bb?q=80&w=600&auto=format&fit=crop",
			TradingViewLink: "https://www.tradingview.com/chart/?symbol=NASDAQ%3AAAPL",
		},
		{
			ID:             2,
			ImageURL:       "https://images.unsplash.com/photo-1518186285589-2f7649de83e0?q=80&w=2874&auto=format&fit=crop",
			Name:           "Green Energy Solutions",
			Ticker:         "GES",
			Description:    "Leading the transition to renewable energy. High growth potential driven by government incentives.",
			CurrentPrice:   22.10,
			TargetPrice:    45.00,
			IntrinsicValue: 38.50,
			Ratios:         "P/E: 45.1\nDebt/Eq: 0.8\nRev Growth: 22%",
			Currency:       "USD",
		},
		{
			ID:             3,
			ImageURL:       "https://images.unsplash.com/photo-1563986768494-4dee46a38531?q=80&w=2934&auto=format&fit=crop",
			Name:           "Global Finance Bank",
			Ticker:         "GFB",
			Description:    "Undervalued banking stock with high dividend yield. Benefiting from rising interest rate environment.",
			CurrentPrice:   55.75,
			TargetPrice:    65.00,
			IntrinsicValue: 68.00,
			Ratios:         "P/B: 0.9\nDiv Yield: 4.5%\nP/E: 8.5",
			Currency:       "USD",
		},
		{
			ID:             4,
			ImageURL:       "https://images.unsplash.com/photo-1620288627223-537a2b70f2fc?q=80&w=2848&auto=format&fit=crop",
			Name:           "Future Auto Inc.",
			Ticker:         "FAI",
			Description:    "EV manufacturer gaining significant market share in Asia and Europe.",
			CurrentPrice:   210.00,
			TargetPrice:    200.00,
			IntrinsicValue: 195.00,
			Ratios:         "P/E: 85\nBeta: 1.5\nProfit Margin: 12%",
			Currency:       "EUR",
		},
	}

	s.news = []NewsItem{
		{
			ID:       1,
			Title:    "Fed Signals Potential Rate Cut in Q4",
			Summary:  "Federal Reserve officials have hinted at a possible interest rate reduction later this year as inflation indicators show signs of cooling.",
			Date:     date.MustParse("2025-08-15"),
			ImageURL: "https://images.unsplash.com/photo-1621261314949-556156e50751?q=80&w=2834&auto=format&fit=crop",
			URL:      "https://www.federalreserve.gov",
		},
		{
			ID:       2,
			Title:    "Tech Sector Rally Continues Despite Regulatory Concerns",
			Summary:  "Major technology stocks surged today, driving the Nasdaq to new highs, shrugging off recent antitrust announcements from the EU.",
			Date:     date.MustParse("2025-08-14"),
			ImageURL: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?q=80&w=2940&auto=format&fit=crop",
		},
		{
			ID:       3,
			Title:    "Oil Prices Stabilize After Weekly Drop",
			Summary:  "Global crude oil prices have found a floor at $75/barrel following a volatile week driven by supply chain disruptions in the Middle East.",
			Date:     date.MustParse("2025-08-12"),
			ImageURL: "https://images.unsplash.com/photo-1518458028785-8fbcd101ebb9?q=80&w=2940&auto=format&fit=crop",
		},
	}

	s.accounts = ChartOfAccounts{
		Assets: []string{
			"Cash in Bank", "Petty Cash", "Accounts Receivable", "Inventory", "Prepaid Rent", "Prepaid Insurance", "Office Supplies",
			"Office Equipment", "Computers & Laptops", "Vehicles", "Furniture & Fixtures", "Land & Building",
		},
		Liabilities: []string{
			"Accounts Payable", "Unearned Revenue", "Salaries Payable", "Taxes Payable", "Short-term Loan",
			"Bank Loan", "Bonds Payable",
		},
		Equity: []string{
			"Share Capital", "Owner's Equity", "Retained Earnings", "Owner's Drawings",
		},
		Revenue: []string{
			"Service Revenue", "Sales Revenue", "Consulting Fees", "Commission Income", "Interest Income",
		},
		Expenses: []string{
			"Cost of Goods Sold", "Salaries & Wages", "Office Rent", "Utilities", "Marketing & Advertising", "Software Subscriptions",
			"IT Services", "Bank Fees", "Insurance Expense", "Depreciation Expense", "Commission Expense", "Office Supplies Expense",
			"Travel Expense", "Legal & Professional Fees",
		},
	}

	entry := func(id int, day, account, description string, category Category, amount float64, txnID string) Entry {
		return Entry{
			ID:            id,
			Date:          date.MustParse(day),
			Account:       account,
			Description:   description,
			Category:      category,
			Amount:        M(amount, "USD"),
			TransactionID: txnID,
		}
	}
	s.ledger.Load(
		// Profit & Loss
		entry(1, "2025-08-01", "Service Revenue", "Consulting Fees - Innovate Corp", Revenue, 25000, "txn_005"),
		entry(2, "2025-08-05", "Service Revenue", "HR Consulting - Global Ventures", Revenue, 18000, "txn_006"),
		entry(3, "2025-08-10", "Salaries & Wages", "August Salaries", Expense, 15000, "txn_008"),
		entry(4, "2025-08-12", "Office Rent", "August Rent", Expense, 5000, "txn_009"),
		entry(5, "2025-08-15", "Software Subscriptions", "Monthly Adobe & CRM tools", Expense, 1200, "txn_010"),
		entry(6, "2025-07-25", "Service Revenue", "Past Project Revenue", Revenue, 12000, "txn_007"),
		entry(12, "2025-08-05", "IT Services", "Server Maintenance Contract", Expense, 8000, "txn_011"),
		// Balance Sheet
		entry(7, "2025-01-01", "Office Equipment", "Initial Office Setup", Asset, 50000, "txn_003"),
		entry(8, "2025-01-01", "Computers & Laptops", "Employee Laptops Purchase", Asset, 25000, "txn_004"),
		entry(9, "2025-01-15", "Bank Loan", "Startup Business Loan", Liability, 40000, "txn_001"),
		entry(10, "2025-03-10", "Share Capital", "Initial Investment", Liability, 100000, "txn_002"),
		entry(11, "2025-08-05", "Accounts Payable", "IT Supplier Invoice", Liability, 8000, "txn_011"),
		entry(13, "2025-01-15", "Cash in Bank", "from loan", Asset, 40000, "txn_001"),
		entry(14, "2025-03-10", "Cash in Bank", "from share capital", Asset, 100000, "txn_002"),
		entry(15, "2025-01-01", "Cash in Bank", "paid for equipment", Asset, -50000, "txn_003"),
		entry(16, "2025-01-01", "Cash in Bank", "paid for computers", Asset, -25000, "txn_004"),
		entry(17, "2025-08-01", "Cash in Bank", "from Innovate Corp", Asset, 25000, "txn_005"),
		entry(18, "2025-08-05", "Cash in Bank", "from Global Ventures", Asset, 18000, "txn_006"),
		entry(19, "2025-07-25", "Cash in Bank", "from past project", Asset, 12000, "txn_007"),
		entry(20, "2025-08-10", "Cash in Bank", "paid salaries", Asset, -15000, "txn_008"),
		entry(21, "2025-08-12", "Cash in Bank", "paid rent", Asset, -5000, "txn_009"),
		entry(22, "2025-08-15", "Cash in Bank", "paid subscriptions", Asset, -1200, "txn_010"),
	)

	s.aboutUs = AboutUsContent{
		MainImages: []string{
			"https://images.unsplash.com/photo-1556761175-5973dc0f32e7?q=80&w=3132&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1556742212-0526869a4DEF?q=80&w=2940&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1542744173-8e7e53415bb0?q=80&w=2940&auto=format&fit=crop",
		},
		Heading:   "Pioneering Progress, Together",
		Paragraph: "At Belreon, we are more than just consultants; we are architects of growth and dedicated partners in your success. Founded on the principle of delivering tangible results, we blend deep industry expertise with cutting-edge analytics to unlock your business's full potential. Our mission is to empower organizations to navigate complexity with clarity, turn ambitious goals into achievements, and build lasting capabilities for a competitive future.",
		Features: []AboutUsFeature{
			{
				ID:          1,
				Icon:        "LightbulbIcon",
				Title:       "Strategic Innovation",
				Description: "We leverage data-driven insights and creative thinking to forge new paths to success beyond conventional solutions.",
			},
			{
				ID:          2,
				Icon:        "UsersIcon",
				Title:       "Collaborative Partnership",
				Description: "We integrate seamlessly with your team, fostering a shared sense of purpose to overcome challenges together.",
			},
			{
				ID:          3,
				Icon:        "BriefcaseIcon",
				Title:       "Unwavering Excellence",
				Description: "We are relentless in our pursuit of quality, delivering measurable outcomes that exceed expectations and drive sustainable growth.",
			},
		},
	}

	return s
}
