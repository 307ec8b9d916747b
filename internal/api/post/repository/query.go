package postRepository

const (
	queryCreatePost = `
		INSERT INTO posts (
			id,
			title,
			subtitle,
			date,
			body,
			img_url,
			author_id,
			created_at
		) VALUES (
			:id,
			:title,
			:subtitle,
			:date,
			:body,
			:img_url,
			:author_id,
			:created_at
		)
	`

	queryGetPostByID = `
		SELECT
			p.id,
			p.title,
			p.subtitle,
			p.date,
			p.body,
			p.img_url,
			p.author_id,
			u.name AS author_name,
			p.created_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = :id
	`

	queryGetPostByTitle = `
		SELECT
			p.id,
			p.title,
			p.subtitle,
			p.date,
			p.body,
			p.img_url,
			p.author_id,
			u.name AS author_name,
			p.created_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.title = :title
	`

	queryGetAllPosts = `
		SELECT
			p.id,
			p.title,
			p.subtitle,
			p.date,
			p.body,
			p.img_url,
			p.author_id,
			u.name AS author_name,
			p.created_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at ASC, p.id ASC
	`

	queryUpdatePost = `
		UPDATE posts
		SET
			title = :title,
			subtitle = :subtitle,
			date = :date,
			body = :body,
			img_url = :img_url,
			author_id = :author_id
		WHERE id = :id
	`

	queryDeletePost = `
		DELETE FROM posts
		WHERE id = :id
	`

	queryCreateComment = `
		INSERT INTO comments (
			id,
			text,
			author_id,
			post_id,
			created_at
		) VALUES (
			:id,
			:text,
			:author_id,
			:post_id,
			:created_at
		)
	`

	queryGetCommentByID = `
		SELECT
			c.id,
			c.text,
			c.author_id,
			u.name AS author_name,
			c.post_id,
			c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = :id
	`

	queryGetCommentsByPost = `
		SELECT
			c.id,
			c.text,
			c.author_id,
			u.name AS author_name,
			c.post_id,
			c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = :post_id
		ORDER BY c.created_at ASC, c.id ASC
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`

	queryDeleteCommentsByPost = `
		DELETE FROM comments
		WHERE post_id = :post_id
	`
)
