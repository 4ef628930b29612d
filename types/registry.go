package types

// AppListPayload mirrors the remote application list response body, e.g.
// {"applist":{"apps":[{"appid":570,"name":"Dota 2"}]}}.
type AppListPayload struct {
	AppList AppListBody `json:"applist"`
}

// AppListBody wraps the application entries of the remote list.
type AppListBody struct {
	Apps []AppListEntry `json:"apps"`
}

// AppListEntry is one application in the remote registry.
type AppListEntry struct {
	AppID int64  `json:"appid"`
	Name  string `json:"name"`
}
