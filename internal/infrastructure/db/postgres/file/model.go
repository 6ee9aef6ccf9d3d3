package file

import (
	"time"

	folderDB "file-uploader/internal/infrastructure/db/postgres/folder"
)

type (
	File struct {
		ID       int64
		FolderID int64

		Name        string
		SizeBytes   int64
		MimeType    string
		StoragePath string
		URL         string

		CreatedAt time.Time

		Folder *folderDB.Folder
	}
	Files []*File
)
