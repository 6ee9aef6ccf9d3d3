// Package access decides resource ownership. Folders belong to a user
// directly, files through their parent folder.
package access

import (
	"file-uploader/internal/domain"
	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
	"file-uploader/internal/domain/user"
)

func Folder(userID user.ID, f *folder.Folder) error {
	if f == nil {
		return domain.NotFound("folder")
	}
	if !f.OwnedBy(userID) {
		return domain.ErrUnauthorized
	}

	return nil
}

// File also requires the file to live in folderID, so a path can't pair an
// owned folder with a file from another one.
func File(userID user.ID, f *file.File, folderID folder.ID) error {
	if f == nil {
		return domain.NotFound("file")
	}
	owner, ok := f.OwnerID()
	if !ok || owner != userID {
		return domain.ErrUnauthorized
	}
	if f.FolderID != folderID {
		return domain.NotFound("file")
	}

	return nil
}
