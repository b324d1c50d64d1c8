package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/blog-be/internal/models"
)

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	INSERT INTO users (username, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING id, username, email, password_hash, created_at;
	`
	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		return models.User{}, translate(err)
	}
	return created, nil
}

// FindByUsername fetches a user by username.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `
	SELECT id, username, email, password_hash, created_at
	FROM users
	WHERE username = $1;
	`
	ctx, cancel := s.readContext(ctx)
	defer cancel()

	user, err := scanUser(s.pool.QueryRow(ctx, query, username))
	if err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	return user, nil
}
