package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"file-uploader/internal/application/ports"
	"file-uploader/internal/domain"
	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
	"file-uploader/internal/infrastructure/metrics"
)

var allowedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       {},
	"application/vnd.ms-excel": {},
	"text/plain":               {},
	"text/csv":                 {},
	"image/jpeg":               {},
	"image/png":                {},
	"image/gif":                {},
	"image/webp":               {},
	"application/zip":          {},
}

type FileService struct {
	logger         *zap.Logger
	fileRepository file.Repository
	blobs          ports.BlobStorage
	orphans        ports.OrphanQueue
	mCounter       *prometheus.CounterVec
	now            func() time.Time
}

func NewFileService(
	logger *zap.Logger,
	fileRepository file.Repository,
	blobs ports.BlobStorage,
	orphans ports.OrphanQueue,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		logger:         logger,
		fileRepository: fileRepository,
		blobs:          blobs,
		orphans:        orphans,
		mCounter:       mCounter,
		now:            time.Now,
	}
}

func (fs *FileService) FindFile(ctx context.Context, id file.ID) (*file.File, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.NotFound("file")
	}

	return f, nil
}

// UploadFile writes the blob first and the metadata second. When the metadata
// insert fails the blob is removed again, or queued as an orphan if that fails too.
func (fs *FileService) UploadFile(
	ctx context.Context,
	parent *folder.Folder,
	in *multipart.FileHeader,
) (*file.File, error) {
	if in == nil {
		return nil, domain.Invalid("file", "Please choose a file to upload")
	}
	if in.Size > file.MaxUploadSize {
		fs.mCounter.WithLabelValues(metrics.UploadRejected).Inc()
		return nil, &domain.UnsupportedMediaError{
			Reason:   fmt.Sprintf("File is larger than %d MiB", file.MaxUploadSize>>20),
			TooLarge: true,
		}
	}

	src, err := in.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mimeType, err := detectMimeType(in.Header.Get("Content-Type"), src)
	if err != nil {
		return nil, fmt.Errorf("detect content type: %w", err)
	}
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		fs.mCounter.WithLabelValues(metrics.UploadRejected).Inc()
		return nil, &domain.UnsupportedMediaError{
			Reason: fmt.Sprintf("File type %q is not allowed", mimeType),
		}
	}

	name := displayName(in.Filename)
	key := storageKey(parent.UserID, parent.ID, fs.now(), sanitizeFileName(name))

	url, err := fs.blobs.Put(ctx, key, src, in.Size, mimeType)
	if err != nil {
		fs.mCounter.WithLabelValues(metrics.UploadStorageError).Inc()
		return nil, domain.StorageError("put blob", err)
	}

	out, err := fs.fileRepository.CreateFile(ctx, file.File{
		Name:        name,
		SizeBytes:   in.Size,
		MimeType:    mimeType,
		StoragePath: key,
		URL:         url,
		FolderID:    parent.ID,
	})
	if err != nil {
		fs.logger.Error("file metadata insert failed after blob write",
			zap.Int64("folder_id", parent.ID),
			zap.String("key", key),
			zap.Error(err),
		)
		fs.compensate(ctx, key)
		return nil, fmt.Errorf("save file metadata: %w", err)
	}

	fs.mCounter.WithLabelValues(metrics.UploadSuccess).Inc()

	return out, nil
}

func (fs *FileService) compensate(ctx context.Context, key string) {
	fs.mCounter.WithLabelValues(metrics.UploadCompensated).Inc()

	// the request context may already be gone, the blob must not be
	ctx = context.WithoutCancel(ctx)
	if err := fs.blobs.Remove(ctx, key); err != nil {
		fs.logger.Error("compensating blob remove failed, queued for cleanup",
			zap.String("key", key),
			zap.Error(err),
		)
		fs.mCounter.WithLabelValues(metrics.BlobRemoveFailed).Inc()
		if fs.orphans.Enqueue(key, "metadata insert failed") {
			fs.mCounter.WithLabelValues(metrics.OrphanEnqueued).Inc()
		}
	}
}

// DeleteFile removes the blob, then the record. A blob that can't be removed
// doesn't block the delete, it is queued for cleanup.
func (fs *FileService) DeleteFile(ctx context.Context, f *file.File) error {
	if err := fs.blobs.Remove(ctx, f.StoragePath); err != nil {
		fs.logger.Warn("blob remove failed, queued for cleanup",
			zap.Int64("file_id", f.ID),
			zap.String("key", f.StoragePath),
			zap.Error(err),
		)
		fs.mCounter.WithLabelValues(metrics.BlobRemoveFailed).Inc()
		if fs.orphans.Enqueue(f.StoragePath, "file deleted") {
			fs.mCounter.WithLabelValues(metrics.OrphanEnqueued).Inc()
		}
	}

	if err := fs.fileRepository.DeleteFile(ctx, f.ID); err != nil {
		return err
	}

	fs.mCounter.WithLabelValues(metrics.FileDeleteSuccess).Inc()

	return nil
}

// detectMimeType trusts the declared type unless it is missing or generic,
// then sniffs the content. src is rewound afterwards.
func detectMimeType(declared string, src io.ReadSeeker) (string, error) {
	if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
		return strings.ToLower(mt), nil
	}

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return "", err
	}
	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	mt, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return "", err
	}

	return mt, nil
}

// displayName keeps the user's name for the file, minus any client path.
func displayName(original string) string {
	s := strings.TrimSpace(strings.ReplaceAll(original, "\\", "/"))
	s = path.Base(s)
	if s == "." || s == "/" || s == "" {
		return "file"
	}

	return s
}

// storageKey: "users/<uid>/folders/<fid>/<utc-ts>-<filename>"
func storageKey(userID, folderID int64, now time.Time, safeName string) string {
	return fmt.Sprintf(
		"users/%d/folders/%d/%s-%s",
		userID,
		folderID,
		now.UTC().Format("20060102T150405.000000000Z"),
		safeName,
	)
}
