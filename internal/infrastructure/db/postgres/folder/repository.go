package folder

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"file-uploader/internal/domain/folder"
	"file-uploader/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) folder.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFolderByID(ctx context.Context, id folder.ID) (*folder.Folder, error) {
	f := new(Folder)
	err := r.db.QueryRow(ctx, SelectFolderByID, id).Scan(
		&f.ID,
		&f.Name,
		&f.UserID,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchUserFolders(ctx context.Context, userID int64) (folder.Folders, error) {
	rows, err := r.db.Query(ctx, SelectUserFolders, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fs := Folders{}
	for rows.Next() {
		f := new(Folder)

		if err = rows.Scan(
			&f.ID,
			&f.Name,
			&f.UserID,

			&f.CreatedAt,
			&f.UpdatedAt,
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

func (r *Repository) CreateFolder(ctx context.Context, req folder.Folder) (*folder.Folder, error) {
	f := new(Folder)

	err := r.db.QueryRow(ctx, InsertFolder, req.Name, req.UserID).Scan(
		&f.ID,
		&f.Name,
		&f.UserID,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) RenameFolder(ctx context.Context, id folder.ID, name string) (*folder.Folder, error) {
	f := new(Folder)

	err := r.db.QueryRow(ctx, UpdateFolderName, name, id).Scan(
		&f.ID,
		&f.Name,
		&f.UserID,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

// DeleteFolder locks the folder row so no file can be inserted under it, then
// removes its files and the folder in one transaction. The storage paths of the
// removed files are returned.
func (r *Repository) DeleteFolder(ctx context.Context, id folder.ID) ([]string, error) {
	var paths []string

	err := postgres.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var locked int64
		if err := tx.QueryRow(ctx, LockFolderByID, id).Scan(&locked); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}

		rows, err := tx.Query(ctx, DeleteFolderFiles, id)
		if err != nil {
			return err
		}
		paths, err = pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, DeleteFolderByID, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
