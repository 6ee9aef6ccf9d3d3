package file

const (
	SelectFileWithFolderByID = `
		SELECT f.id, f.folder_id, f.name, f.size_bytes, f.mime_type, f.storage_path, f.url, f.created_at,
		       d.id, d.name, d.user_id, d.created_at, d.updated_at
		FROM files f
		JOIN folders d ON d.id = f.folder_id
		WHERE f.id = $1
	`
	SelectFolderFiles = `
		SELECT id, folder_id, name, size_bytes, mime_type, storage_path, url, created_at
		FROM files
		WHERE folder_id = $1
		ORDER BY created_at, id
	`
	InsertFile = `
		INSERT INTO files (folder_id, name, size_bytes, mime_type, storage_path, url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, folder_id, name, size_bytes, mime_type, storage_path, url, created_at
	`
	DeleteFileByID     = `DELETE FROM files WHERE id = $1`
	SelectStoragePaths = `SELECT storage_path FROM files`
)
