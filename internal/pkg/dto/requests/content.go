package requests

import "io"

type UpsertScreenText struct {
	Title     string `json:"title,omitempty"`
	Content   string `json:"content,omitempty"`
	ScreenKey string
}

// UploadContentFile carries a multipart upload. Reader streams the file
// body straight to object storage.
type UploadContentFile struct {
	Name        string
	Description string
	FileType    string
	SizeInBytes int64
	Reader      io.Reader
}
