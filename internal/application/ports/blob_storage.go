package ports

import (
	"context"
	"io"

	"file-uploader/internal/domain/file"
)

type BlobStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]file.Blob, error)
	PublicURL(key string) string
}
