package models

// DriveFile is the slice of Drive metadata the dashboard file browser shows.
type DriveFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size,omitempty"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
	IsFolder     bool   `json:"isFolder"`
	Icon         string `json:"icon"`
	WebViewLink  string `json:"webViewLink,omitempty"`
	Parent       string `json:"parent,omitempty"`
}

// DriveListing is one page of a folder listing.
type DriveListing struct {
	Files         []DriveFile `json:"files"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}
