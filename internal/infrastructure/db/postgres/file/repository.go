package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"file-uploader/internal/domain"
	"file-uploader/internal/domain/file"
	"file-uploader/internal/domain/folder"
	"file-uploader/internal/infrastructure/db/postgres"
	folderDB "file-uploader/internal/infrastructure/db/postgres/folder"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFileByID(ctx context.Context, id file.ID) (*file.File, error) {
	f := &File{Folder: new(folderDB.Folder)}
	err := r.db.QueryRow(ctx, SelectFileWithFolderByID, id).Scan(
		&f.ID,
		&f.FolderID,

		&f.Name,
		&f.SizeBytes,
		&f.MimeType,
		&f.StoragePath,
		&f.URL,

		&f.CreatedAt,

		&f.Folder.ID,
		&f.Folder.Name,
		&f.Folder.UserID,
		&f.Folder.CreatedAt,
		&f.Folder.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchFolderFiles(ctx context.Context, folderID folder.ID) (file.Files, error) {
	rows, err := r.db.Query(ctx, SelectFolderFiles, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fs := Files{}
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.FolderID,

			&f.Name,
			&f.SizeBytes,
			&f.MimeType,
			&f.StoragePath,
			&f.URL,

			&f.CreatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) CreateFile(ctx context.Context, req file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.FolderID, req.Name, req.SizeBytes, req.MimeType, req.StoragePath, req.URL,
	).Scan(
		&f.ID,
		&f.FolderID,

		&f.Name,
		&f.SizeBytes,
		&f.MimeType,
		&f.StoragePath,
		&f.URL,

		&f.CreatedAt,
	)
	if err != nil {
		// the folder went away between the ownership check and the insert
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, domain.NotFound("folder")
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) DeleteFile(ctx context.Context, id file.ID) error {
	_, err := r.db.Exec(ctx, DeleteFileByID, id)
	return err
}

func (r *Repository) FetchStoragePaths(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.db.Query(ctx, SelectStoragePaths)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := make(map[string]struct{})
	for rows.Next() {
		var p string
		if err = rows.Scan(&p); err != nil {
			return nil, err
		}
		paths[p] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}
