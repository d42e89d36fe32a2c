package domain

import (
	"bytes"
	"encoding/json"
	"math"
)

// DiscoveryMenuEntry is one entry of the discovery service feed.
type DiscoveryMenuEntry struct {
	ID             string       `json:"id"`
	Label          string       `json:"label"`
	Path           string       `json:"path"`
	AppKey         string       `json:"app_key"`
	ApplicationKey string       `json:"application_key,omitempty"` // Older feeds
	Enabled        EnabledFlag  `json:"enabled"`
	Order          OrderedValue `json:"order"`
}

// Application returns the application key, preferring app_key over application_key.
func (e DiscoveryMenuEntry) Application() AppID {
	if e.AppKey != "" {
		return AppID(e.AppKey)
	}
	return AppID(e.ApplicationKey)
}

// IsDisabled is true only when the feed explicitly says enabled=false.
func (e DiscoveryMenuEntry) IsDisabled() bool {
	return e.Enabled.Off()
}

// EnabledFlag is the feed's enabled field. Only the JSON literal false switches an entry off;
// anything else, including strings and numbers, leaves it on.
type EnabledFlag struct {
	off bool
}

func (f EnabledFlag) Off() bool {
	return f.off
}

func (f *EnabledFlag) UnmarshalJSON(data []byte) error {
	f.off = bytes.Equal(bytes.TrimSpace(data), []byte("false"))
	return nil
}

// OrderedValue is the feed's order field. Values that are not JSON numbers read as absent.
type OrderedValue struct {
	value float64
	set   bool
}

func Order(v float64) OrderedValue {
	return OrderedValue{value: v, set: true}
}

// Value returns the order, or math.MaxFloat64 when absent so that unordered entries sort last.
func (o OrderedValue) Value() float64 {
	if !o.set {
		return math.MaxFloat64
	}
	return o.value
}

func (o *OrderedValue) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = OrderedValue{}
		return nil
	}
	*o = Order(v)
	return nil
}

// DiscoveryMenuResponse groups feed entries by menu group name.
type DiscoveryMenuResponse struct {
	Menus map[string][]DiscoveryMenuEntry `json:"menus,omitempty"`
}

// UnmarshalJSON decodes the feed leniently: a body or menus value of the wrong shape reads as
// no groups, and groups or entries of the wrong shape are dropped. A null group stays present
// with a nil slice. Syntax errors are still reported by encoding/json before this runs.
func (r *DiscoveryMenuResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Menus json.RawMessage `json:"menus"`
	}
	r.Menus = nil
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	var groups map[string]json.RawMessage
	if err := json.Unmarshal(raw.Menus, &groups); err != nil || groups == nil {
		return nil
	}

	r.Menus = make(map[string][]DiscoveryMenuEntry, len(groups))
	for name, group := range groups {
		var rawEntries []json.RawMessage
		if err := json.Unmarshal(group, &rawEntries); err != nil {
			continue
		}
		if rawEntries == nil {
			r.Menus[name] = nil
			continue
		}

		entries := make([]DiscoveryMenuEntry, 0, len(rawEntries))
		for _, rawEntry := range rawEntries {
			if bytes.Equal(bytes.TrimSpace(rawEntry), []byte("null")) {
				continue
			}
			var entry DiscoveryMenuEntry
			if err := json.Unmarshal(rawEntry, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
		r.Menus[name] = entries
	}

	return nil
}
