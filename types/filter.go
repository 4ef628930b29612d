package types

// AppFilter selects which application's images a listing returns: either
// every application or one specific id. Use FilterAll or FilterApp; the zero
// value matches nothing.
type AppFilter struct {
	all   bool
	appID string
}

// FilterAll returns a filter matching every application.
func FilterAll() AppFilter {
	return AppFilter{all: true}
}

// FilterApp returns a filter matching only the given application id.
func FilterApp(appID string) AppFilter {
	return AppFilter{appID: appID}
}

// All reports whether the filter matches every application.
func (f AppFilter) All() bool {
	return f.all
}

// AppID returns the selected application id, empty for the all-apps filter.
func (f AppFilter) AppID() string {
	return f.appID
}

// Matches reports whether images owned by appID pass the filter.
func (f AppFilter) Matches(appID string) bool {
	if f.all {
		return true
	}
	return f.appID != "" && f.appID == appID
}
