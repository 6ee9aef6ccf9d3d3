package ports

import (
	"context"
	"mime/multipart"

	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
)

type FileService interface {
	FindFile(ctx context.Context, id file.ID) (*file.File, error)
	UploadFile(ctx context.Context, parent *folder.Folder, in *multipart.FileHeader) (*file.File, error)
	DeleteFile(ctx context.Context, f *file.File) error
}
