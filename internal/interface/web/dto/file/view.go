package file

import "time"

type (
	View struct {
		ID        int64
		FolderID  int64
		Name      string
		SizeBytes int64
		Size      string
		MimeType  string
		URL       string
		CreatedAt time.Time
	}
	Views []View
)
