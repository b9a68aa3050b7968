package store

import (
	"context"
	"database/sql"

	"taskhub/model"
)

func (db *DB) CreateUser(ctx context.Context, u *model.User) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO users (id, username, password, created_at)
		VALUES (?, ?, ?, ?)
	`, u.UserID, u.Username, u.Password, u.CreatedAt)
	if isConstraintErr(err) {
		return ErrDuplicate
	}
	return err
}

func (db *DB) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, username, password, created_at FROM users WHERE id = ?
	`, id)
	return scanUser(row)
}

func (db *DB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, username, password, created_at FROM users WHERE username = ?
	`, username)
	return scanUser(row)
}

func (db *DB) ListUsers(ctx context.Context, search string) ([]model.User, error) {
	query := `SELECT id, username, password, created_at FROM users`
	args := []any{}
	if search != "" {
		query += ` WHERE LOWER(username) LIKE LOWER(?)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY username`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Username, &u.Password, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.UserID, &u.Username, &u.Password, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
