package file

import (
	"time"

	"file-uploader/internal/domain/folder"
)

// MaxUploadSize is the largest accepted file, 50 MiB.
const MaxUploadSize int64 = 50 << 20

type (
	ID   = int64
	File struct {
		ID          ID
		Name        string
		SizeBytes   int64
		MimeType    string
		StoragePath string
		URL         string
		FolderID    folder.ID

		CreatedAt time.Time

		// Folder is the parent, loaded by FetchFileByID.
		Folder *folder.Folder
	}
	Files []*File

	// Blob is an object in the blob store, listed by key.
	Blob struct {
		Key          string
		Size         int64
		LastModified time.Time
	}
)

// OwnerID resolves the owner through the parent folder; files never store it.
func (f *File) OwnerID() (int64, bool) {
	if f == nil || f.Folder == nil {
		return 0, false
	}
	return f.Folder.UserID, true
}
