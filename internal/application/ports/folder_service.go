package ports

import (
	"context"

	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
	"file-uploader/internal/domain/user"
)

type FolderService interface {
	FindUserFolders(ctx context.Context, userID user.ID) (folder.Folders, error)
	FindFolder(ctx context.Context, id folder.ID) (*folder.Folder, error)
	FindFolderFiles(ctx context.Context, id folder.ID) (file.Files, error)
	CreateFolder(ctx context.Context, userID user.ID, name string) (*folder.Folder, error)
	RenameFolder(ctx context.Context, id folder.ID, name string) (*folder.Folder, error)
	DeleteFolder(ctx context.Context, f *folder.Folder) error
}
