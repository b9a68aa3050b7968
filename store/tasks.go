package store

import (
	"context"
	"database/sql"
	"time"

	"taskhub/model"
)

const taskColumns = `id, title, description, status, admin_id, resolver_id, project_id, created_at, updated_at`

func (db *DB) CreateTask(ctx context.Context, t *model.Task) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.TaskID, t.Title, t.Description, t.Status, t.AdminID, t.ResolverID, t.ProjectID, t.CreatedAt, t.UpdatedAt)
	return err
}

func (db *DB) GetTaskForActor(ctx context.Context, id, actorID string) (*model.Task, error) {
	row := db.QueryRowContext(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE id = ? AND (admin_id = ? OR resolver_id = ?)
	`, id, actorID, actorID)
	return scanTask(row)
}

func (db *DB) GetTaskForAdmin(ctx context.Context, id, adminID string) (*model.Task, error) {
	row := db.QueryRowContext(ctx, `
		SELECT `+taskColumns+` FROM tasks WHERE id = ? AND admin_id = ?
	`, id, adminID)
	return scanTask(row)
}

func (db *DB) ListTasksForActor(ctx context.Context, actorID string, status model.TaskStatus, search string) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE (admin_id = ? OR resolver_id = ?)`
	args := []any{actorID, actorID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	if search != "" {
		query += ` AND (LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))`
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	query += ` ORDER BY created_at`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (db *DB) UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) error {
	_, err := db.ExecContext(ctx, `
		UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?
	`, status, time.Now(), id)
	return err
}

func (db *DB) UpdateTaskResolver(ctx context.Context, id, resolverID string) error {
	_, err := db.ExecContext(ctx, `
		UPDATE tasks SET resolver_id = ?, updated_at = ? WHERE id = ?
	`, resolverID, time.Now(), id)
	return err
}

// AssignTaskToProject is the two-sided relationship update: in the relational
// shape both sides live in the task's foreign key, so a single transactional
// UPDATE moves the task into the project's collection and sets the
// back-reference at once.
func (db *DB) AssignTaskToProject(ctx context.Context, taskID, projectID string) error {
	return db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE tasks SET project_id = ?, updated_at = ? WHERE id = ?
		`, projectID, time.Now(), taskID)
		return err
	})
}

func (db *DB) DeleteTask(ctx context.Context, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return err
}

func scanTask(row *sql.Row) (*model.Task, error) {
	var t model.Task
	err := row.Scan(&t.TaskID, &t.Title, &t.Description, &t.Status,
		&t.AdminID, &t.ResolverID, &t.ProjectID, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		err := rows.Scan(&t.TaskID, &t.Title, &t.Description, &t.Status,
			&t.AdminID, &t.ResolverID, &t.ProjectID, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
