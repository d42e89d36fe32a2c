package domain

// AppID identifies an independently deployed application of the suite.
type AppID string

func (a AppID) String() string {
	return string(a)
}

const (
	AppPortal      AppID = "portal"      // Organization management
	AppLedger      AppID = "ledger"      // General ledger
	AppAssets      AppID = "assets"      // Assets / inventory
	AppCRM         AppID = "crm"         // Contacts
	AppHR          AppID = "hr"          // HR tools
	AppBookkeeping AppID = "bookkeeping" // Sales, purchases, finance
)

var AppIDs = []AppID{
	AppPortal,
	AppLedger,
	AppAssets,
	AppCRM,
	AppHR,
	AppBookkeeping,
}

func (a AppID) GetAppName() string {
	switch a {
	case AppPortal:
		return "Portal"
	case AppLedger:
		return "Ledger"
	case AppAssets:
		return "Assets"
	case AppCRM:
		return "CRM"
	case AppHR:
		return "HR"
	case AppBookkeeping:
		return "Book Keeping"
	default:
		return "Unknown"
	}
}

// AppBaseURLs maps an application to the root URL it is deployed under.
// Applications without an entry cannot be linked to.
type AppBaseURLs map[AppID]string

// Lookup returns the base URL registered for app, if any.
func (u AppBaseURLs) Lookup(app AppID) (string, bool) {
	base, ok := u[app]
	if !ok || base == "" {
		return "", false
	}
	return base, true
}
