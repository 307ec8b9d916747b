package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			email,
			password,
			name,
			role,
			created_at
		) VALUES (
			:id,
			:email,
			:password,
			:name,
			:role,
			:created_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			email,
			password,
			name,
			role,
			created_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			email,
			password,
			name,
			role,
			created_at
		FROM users
		WHERE email = :email
	`

	queryCountUsers = `
		SELECT COUNT(*)
		FROM users
	`
)
