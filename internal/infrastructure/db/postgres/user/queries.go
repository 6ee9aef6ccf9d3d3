package user

const (
	SelectUserByID = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	SelectUserByUsername = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	InsertUser = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, created_at
	`
)
