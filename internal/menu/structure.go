package menu

import "trf/navmenu/internal/domain"

// Structure returns the static suite navigation tree. Every call returns a fresh copy.
func Structure() []domain.MenuItem {
	return Clone(structure)
}

var structure = []domain.MenuItem{
	{
		ID:    "org",
		Label: "Organization",
		Children: []domain.MenuItem{
			{ID: "org-overview", Label: "Overview", AppID: domain.AppPortal, Path: "/app/manage-organization/list"},
			{ID: "org-add", Label: "Add new", AppID: domain.AppPortal, Path: "/app/manage-organization/new"},
			{ID: "org-users", Label: "Manage users", AppID: domain.AppPortal, Path: "/app/organization/users", Disabled: true},
			{ID: "org-billing", Label: "Billing", AppID: domain.AppPortal, Path: "/app/organization/billing", Disabled: true},
			{ID: "org-my-settings", Label: "My settings", AppID: domain.AppPortal, Path: "/app/me/settings", Disabled: true},
			{ID: "org-my-account", Label: "My account", AppID: domain.AppPortal, Path: "/app/me/account", Disabled: true},
		},
	},
	{
		ID:    "assets",
		Label: "Assets / inventory",
		Children: []domain.MenuItem{
			{ID: "assets-items", Label: "Items", AppID: domain.AppAssets, Path: "/items"},
			{
				ID:    "assets-reports",
				Label: "Reports",
				Children: []domain.MenuItem{
					{ID: "assets-reports-items-out", Label: "Items out", AppID: domain.AppAssets, Path: "/reports/items-out"},
					{ID: "assets-reports-missing", Label: "Missing", AppID: domain.AppAssets, Path: "/reports/missing"},
				},
			},
		},
	},
	{
		ID:    "crm",
		Label: "CRM",
		Children: []domain.MenuItem{
			{ID: "crm-dashboard", Label: "Dashboard", AppID: domain.AppCRM, Path: "/app"},
			{ID: "crm-contacts", Label: "Contacts", AppID: domain.AppCRM, Path: "/app/contacts"},
			{ID: "crm-add-contact", Label: "Add contact", AppID: domain.AppCRM, Path: "/app/contacts/new"},
			{
				ID:    "crm-admin",
				Label: "Contact Administration",
				Children: []domain.MenuItem{
					{ID: "crm-admin-relation-types", Label: "Relation types", AppID: domain.AppCRM, Path: "/app/admin/relation-types"},
					{ID: "crm-admin-attribute-types", Label: "Attribute types", AppID: domain.AppCRM, Path: "/app/admin/attribute-types"},
				},
			},
			{
				ID:       "crm-reports",
				Label:    "Reports",
				Disabled: true,
				Children: []domain.MenuItem{
					{ID: "crm-reports-sales", Label: "Sales in progress", AppID: domain.AppCRM, Path: "/reports/sales-in-progress", Disabled: true},
					{ID: "crm-reports-debtors", Label: "Debtors", AppID: domain.AppCRM, Path: "/reports/debtors", Disabled: true},
				},
			},
		},
	},
	{
		ID:    "bookkeeping",
		Label: "Book Keeping",
		Children: []domain.MenuItem{
			{
				ID:    "bk-ledger",
				Label: "Ledger",
				Children: []domain.MenuItem{
					{ID: "bk-ledger-dashboard", Label: "Dashboard", AppID: domain.AppLedger, Path: "/app"},
					{ID: "bk-ledger-accounts", Label: "Chart of Accounts", AppID: domain.AppLedger, Path: "/app/accounts"},
					{ID: "bk-ledger-periods", Label: "Accounting Periods", AppID: domain.AppLedger, Path: "/app/periods"},
					{ID: "bk-ledger-entries", Label: "Journal Entries", AppID: domain.AppLedger, Path: "/app/entries"},
				},
			},
			{
				ID:       "bk-sales",
				Label:    "Sales",
				Disabled: true,
				Children: []domain.MenuItem{
					{ID: "bk-sales-invoices", Label: "Invoices", AppID: domain.AppBookkeeping, Path: "/sales/invoices", Disabled: true},
					{ID: "bk-sales-create", Label: "Create sale", AppID: domain.AppBookkeeping, Path: "/sales/new", Disabled: true},
					{
						ID:       "bk-sales-reports",
						Label:    "Reports",
						Disabled: true,
						Children: []domain.MenuItem{
							{ID: "bk-sales-reports-sales", Label: "Sales report", AppID: domain.AppBookkeeping, Path: "/reports/sales", Disabled: true},
							{ID: "bk-sales-reports-overdue", Label: "Invoices over due", AppID: domain.AppBookkeeping, Path: "/reports/invoices-overdue", Disabled: true},
						},
					},
				},
			},
			{
				ID:       "bk-purchases",
				Label:    "Purchases",
				Disabled: true,
				Children: []domain.MenuItem{
					{ID: "bk-purchase-invoices", Label: "Invoices", AppID: domain.AppBookkeeping, Path: "/purchases/invoices", Disabled: true},
					{ID: "bk-purchase-import", Label: "Import invoice", AppID: domain.AppBookkeeping, Path: "/purchases/import", Disabled: true},
					{
						ID:       "bk-purchase-reports",
						Label:    "Reports",
						Disabled: true,
						Children: []domain.MenuItem{
							{ID: "bk-purchase-reports-overdue", Label: "Over due", AppID: domain.AppBookkeeping, Path: "/reports/purchases-overdue", Disabled: true},
							{ID: "bk-purchase-reports-by-buyer", Label: "By buyer", AppID: domain.AppBookkeeping, Path: "/reports/by-buyer", Disabled: true},
						},
					},
				},
			},
			{
				ID:       "bk-finance",
				Label:    "Finance",
				Disabled: true,
				Children: []domain.MenuItem{
					{ID: "bk-finance-balance", Label: "Balance sheet", AppID: domain.AppBookkeeping, Path: "/finance/balance-sheet", Disabled: true},
					{
						ID:       "bk-finance-reports",
						Label:    "Reports",
						Disabled: true,
						Children: []domain.MenuItem{
							{ID: "bk-finance-reports-balance", Label: "Balance sheet", AppID: domain.AppBookkeeping, Path: "/reports/balance-sheet", Disabled: true},
						},
					},
				},
			},
		},
	},
	{
		ID:    "hr",
		Label: "HR Tools",
		Children: []domain.MenuItem{
			{ID: "hr-overview", Label: "Overview", AppID: domain.AppHR, Path: "/overview"},
			{ID: "hr-employees", Label: "Employees", AppID: domain.AppHR, Path: "/employees"},
			{ID: "hr-contracts", Label: "Contracts", AppID: domain.AppHR, Path: "/contracts"},
			{
				ID:    "hr-settings",
				Label: "Settings",
				Children: []domain.MenuItem{
					{ID: "hr-settings-templates", Label: "Contract templates", AppID: domain.AppHR, Path: "/settings/templates"},
					{ID: "hr-settings-rules", Label: "Ruleset settings", AppID: domain.AppHR, Path: "/settings/rules"},
				},
			},
		},
	},
}
