package folder

const (
	SelectFolderByID = `
		SELECT id, name, user_id, created_at, updated_at
		FROM folders
		WHERE id = $1
	`
	SelectUserFolders = `
		SELECT id, name, user_id, created_at, updated_at
		FROM folders
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	InsertFolder = `
		INSERT INTO folders (name, user_id)
		VALUES ($1, $2)
		RETURNING id, name, user_id, created_at, updated_at
	`
	UpdateFolderName = `
		UPDATE folders
		SET name = $1,
		    updated_at = now()
		WHERE id = $2
		RETURNING id, name, user_id, created_at, updated_at
	`
	LockFolderByID    = `SELECT id FROM folders WHERE id = $1 FOR UPDATE`
	DeleteFolderFiles = `
		DELETE FROM files
		WHERE folder_id = $1
		RETURNING storage_path
	`
	DeleteFolderByID = `DELETE FROM folders WHERE id = $1`
)
