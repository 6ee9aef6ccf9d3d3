package folder

import (
	"context"
)

// Repository fetch methods return (nil, nil) when the folder does not exist.
type Repository interface {
	FetchFolderByID(ctx context.Context, id ID) (*Folder, error)
	FetchUserFolders(ctx context.Context, userID int64) (Folders, error)
	CreateFolder(ctx context.Context, req Folder) (*Folder, error)
	RenameFolder(ctx context.Context, id ID, name string) (*Folder, error)
	// DeleteFolder removes the folder and its file rows atomically and returns
	// the storage paths of the removed files.
	DeleteFolder(ctx context.Context, id ID) ([]string, error)
}
