package types

// ImageRecord represents a single screenshot discovered during a catalog scan.
type ImageRecord struct {
	FilePath string `json:"filepath"`
	FileName string `json:"filename"`
	AppID    string `json:"appId"`
}

// ApplicationRecord holds the resolved metadata for one application id.
// Title is empty when the registry has no entry for the id.
type ApplicationRecord struct {
	AppID string `json:"appId"`
	Title string `json:"title,omitempty"`
}

// Label returns the text the UI renders for an application, "Title (id)" when
// the title is known and the bare id otherwise.
func (a ApplicationRecord) Label() string {
	if a.Title == "" {
		return a.AppID
	}
	return a.Title + " (" + a.AppID + ")"
}
