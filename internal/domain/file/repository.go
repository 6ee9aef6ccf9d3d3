package file

import (
	"context"

	"file-uploader/internal/domain/folder"
)

type Repository interface {
	// FetchFileByID loads the file together with its parent folder, (nil, nil) when absent.
	FetchFileByID(ctx context.Context, id ID) (*File, error)
	FetchFolderFiles(ctx context.Context, folderID folder.ID) (Files, error)
	CreateFile(ctx context.Context, req File) (*File, error)
	DeleteFile(ctx context.Context, id ID) error
	FetchStoragePaths(ctx context.Context) (map[string]struct{}, error)
}
