package types

// ShareRequest is the request body for POST /api/self/v1/share.
type ShareRequest struct {
	AppID    string `json:"appId"`
	FileName string `json:"filename"`
}

// ShareResponse is the response body for a started share.
type ShareResponse struct {
	URL      string `json:"url"`
	FileName string `json:"filename"`
}

// ShareStatus describes the currently active share for GET /api/self/v1/status.
type ShareStatus struct {
	Active   bool   `json:"active"`
	URL      string `json:"url,omitempty"`
	FileName string `json:"filename,omitempty"`
	AppID    string `json:"appId,omitempty"`
}

// ImageListResponse is the response body for GET /api/self/v1/images.
type ImageListResponse struct {
	Images []ImageRecord `json:"images"`
	Count  int           `json:"count"`
}

// AppListResponse is the response body for GET /api/self/v1/apps.
type AppListResponse struct {
	Apps  []ApplicationRecord `json:"apps"`
	Count int                 `json:"count"`
}
