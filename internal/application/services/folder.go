package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"file-uploader/internal/application/ports"
	"file-uploader/internal/domain"
	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
	"file-uploader/internal/domain/user"
	"file-uploader/internal/infrastructure/metrics"
)

type FolderService struct {
	logger           *zap.Logger
	folderRepository folder.Repository
	fileRepository   file.Repository
	blobs            ports.BlobStorage
	orphans          ports.OrphanQueue
	mCounter         *prometheus.CounterVec
}

func NewFolderService(
	logger *zap.Logger,
	folderRepository folder.Repository,
	fileRepository file.Repository,
	blobs ports.BlobStorage,
	orphans ports.OrphanQueue,
	mCounter *prometheus.CounterVec,
) ports.FolderService {
	return &FolderService{
		logger:           logger,
		folderRepository: folderRepository,
		fileRepository:   fileRepository,
		blobs:            blobs,
		orphans:          orphans,
		mCounter:         mCounter,
	}
}

func (fs *FolderService) FindUserFolders(ctx context.Context, userID user.ID) (folder.Folders, error) {
	return fs.folderRepository.FetchUserFolders(ctx, userID)
}

func (fs *FolderService) FindFolder(ctx context.Context, id folder.ID) (*folder.Folder, error) {
	f, err := fs.folderRepository.FetchFolderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.NotFound("folder")
	}

	return f, nil
}

func (fs *FolderService) FindFolderFiles(ctx context.Context, id folder.ID) (file.Files, error) {
	return fs.fileRepository.FetchFolderFiles(ctx, id)
}

func (fs *FolderService) CreateFolder(ctx context.Context, userID user.ID, name string) (*folder.Folder, error) {
	return fs.folderRepository.CreateFolder(ctx, folder.Folder{
		Name:   name,
		UserID: userID,
	})
}

func (fs *FolderService) RenameFolder(ctx context.Context, id folder.ID, name string) (*folder.Folder, error) {
	f, err := fs.folderRepository.RenameFolder(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.NotFound("folder")
	}

	return f, nil
}

// DeleteFolder drops the folder and its file rows in one step, then removes
// the blobs of exactly those rows. A failed removal leaves an orphan that is
// queued for cleanup.
func (fs *FolderService) DeleteFolder(ctx context.Context, f *folder.Folder) error {
	keys, err := fs.folderRepository.DeleteFolder(ctx, f.ID)
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err = fs.blobs.Remove(ctx, key); err != nil {
			fs.logger.Warn("blob remove failed, queued for cleanup",
				zap.Int64("folder_id", f.ID),
				zap.String("key", key),
				zap.Error(err),
			)
			fs.mCounter.WithLabelValues(metrics.BlobRemoveFailed).Inc()
			if fs.orphans.Enqueue(key, "folder deleted") {
				fs.mCounter.WithLabelValues(metrics.OrphanEnqueued).Inc()
			}
		}
	}

	fs.mCounter.WithLabelValues(metrics.FolderDeleteSuccess).Inc()

	return nil
}
