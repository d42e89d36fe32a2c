package link

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trf/navmenu/internal/domain"
)

func TestJoinURL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{base: "https://a.test/", path: "/b/c", want: "https://a.test/b/c"},
		{base: "https://a.test", path: "b/c", want: "https://a.test/b/c"},
		{base: "https://a.test///", path: "///b/c", want: "https://a.test/b/c"},
		{base: "https://x/", path: "/y", want: "https://x/y"},
		{base: "https://x", path: "y", want: "https://x/y"},
		{base: "https://a.test/crm", path: "/app/contacts/", want: "https://a.test/crm/app/contacts/"},
	}

	for _, tt := range tests {
		t.Run(tt.base+"+"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinURL(tt.base, tt.path))
		})
	}
}

func TestResolveClick(t *testing.T) {
	baseURLs := domain.AppBaseURLs{
		domain.AppCRM:    "https://crm.trf.test/",
		domain.AppLedger: "https://ledger.trf.test",
		domain.AppHR:     "",
	}

	tests := []struct {
		name string
		item domain.MenuItem
		want domain.NavigationIntent
	}{
		{
			name: "disabled item does nothing",
			item: domain.MenuItem{ID: "x", AppID: domain.AppCRM, Path: "/app", ExternalURL: "https://e.test", Disabled: true},
			want: domain.NoIntent,
		},
		{
			name: "same application routes internally",
			item: domain.MenuItem{ID: "x", AppID: domain.AppCRM, Path: "/app/contacts"},
			want: domain.InternalIntent("/app/contacts"),
		},
		{
			name: "item without application routes internally",
			item: domain.MenuItem{ID: "x", Path: "/help"},
			want: domain.InternalIntent("/help"),
		},
		{
			name: "other application joins base url",
			item: domain.MenuItem{ID: "x", AppID: domain.AppLedger, Path: "/app/accounts"},
			want: domain.ExternalIntent("https://ledger.trf.test/app/accounts"),
		},
		{
			name: "external url wins over base url",
			item: domain.MenuItem{ID: "x", AppID: domain.AppLedger, Path: "/app", ExternalURL: "https://docs.trf.test/ledger"},
			want: domain.ExternalIntent("https://docs.trf.test/ledger"),
		},
		{
			name: "external url without path",
			item: domain.MenuItem{ID: "x", ExternalURL: "https://status.trf.test"},
			want: domain.ExternalIntent("https://status.trf.test"),
		},
		{
			name: "unregistered application is a no-op",
			item: domain.MenuItem{ID: "x", AppID: domain.AppAssets, Path: "/items"},
			want: domain.NoIntent,
		},
		{
			name: "empty base url is a no-op",
			item: domain.MenuItem{ID: "x", AppID: domain.AppHR, Path: "/overview"},
			want: domain.NoIntent,
		},
		{
			name: "container without path is a no-op",
			item: domain.MenuItem{ID: "x", Children: []domain.MenuItem{{ID: "y", Path: "/y"}}},
			want: domain.NoIntent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveClick(tt.item, domain.AppCRM, baseURLs)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, ResolveClick(tt.item, domain.AppCRM, baseURLs))
		})
	}
}

func TestResolveClickNestedContainerWithPath(t *testing.T) {
	item := domain.MenuItem{
		ID:    "crm-admin",
		AppID: domain.AppCRM,
		Path:  "/app/admin",
		Children: []domain.MenuItem{
			{ID: "crm-admin-relation-types", AppID: domain.AppCRM, Path: "/app/admin/relation-types"},
		},
	}

	assert.Equal(t, domain.InternalIntent("/app/admin"), ResolveClick(item, domain.AppCRM, nil))
	assert.Equal(t, domain.NoIntent, ResolveClick(item, domain.AppHR, nil))
}
