package domain

// UploadedFile is an accepted upload re-encoded for inline storage.
type UploadedFile struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimetype"`
	Size     int64  `json:"size"`
	DataURI  string `json:"data"`
}
