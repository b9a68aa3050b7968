package store

import (
	"context"
	"database/sql"

	"taskhub/model"
)

func (db *DB) CreateProject(ctx context.Context, p *model.Project) error {
	return db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projects (id, title, description, admin_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.ProjectID, p.Title, p.Description, p.AdminID, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return err
		}

		// The creator is the sole initial member.
		for _, m := range p.Members {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO project_members (project_id, user_id) VALUES (?, ?)
			`, p.ProjectID, m.UserID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *DB) GetProjectByID(ctx context.Context, id string) (*model.Project, error) {
	p, err := db.getProject(ctx, `SELECT id, title, description, admin_id, created_at, updated_at
		FROM projects WHERE id = ?`, id)
	if p == nil || err != nil {
		return nil, err
	}
	if p.Tasks, err = db.loadProjectTasks(ctx, p.ProjectID); err != nil {
		return nil, err
	}
	return p, nil
}

func (db *DB) GetProjectForActor(ctx context.Context, id, actorID string) (*model.Project, error) {
	// Visibility is part of the query: a project the actor neither owns nor
	// belongs to scans as no row at all.
	p, err := db.getProject(ctx, `
		SELECT p.id, p.title, p.description, p.admin_id, p.created_at, p.updated_at
		FROM projects p
		LEFT JOIN project_members m ON m.project_id = p.id AND m.user_id = ?
		WHERE p.id = ? AND (p.admin_id = ? OR m.user_id IS NOT NULL)
	`, actorID, id, actorID)
	if p == nil || err != nil {
		return nil, err
	}
	if p.Members, err = db.loadProjectMembers(ctx, p.ProjectID); err != nil {
		return nil, err
	}
	if p.Tasks, err = db.loadProjectTasks(ctx, p.ProjectID); err != nil {
		return nil, err
	}
	return p, nil
}

func (db *DB) GetProjectForAdmin(ctx context.Context, id, adminID string) (*model.Project, error) {
	p, err := db.getProject(ctx, `SELECT id, title, description, admin_id, created_at, updated_at
		FROM projects WHERE id = ? AND admin_id = ?`, id, adminID)
	if p == nil || err != nil {
		return nil, err
	}
	if p.Members, err = db.loadProjectMembers(ctx, p.ProjectID); err != nil {
		return nil, err
	}
	return p, nil
}

func (db *DB) ListProjectsByAdmin(ctx context.Context, adminID, search string) ([]model.Project, error) {
	query := `SELECT id, title, description, admin_id, created_at, updated_at
		FROM projects WHERE admin_id = ?`
	args := []any{adminID}
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

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		err := rows.Scan(&p.ProjectID, &p.Title, &p.Description, &p.AdminID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (db *DB) AddProjectMember(ctx context.Context, projectID, userID string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO project_members (project_id, user_id) VALUES (?, ?)
	`, projectID, userID)
	if isConstraintErr(err) {
		return ErrDuplicate
	}
	return err
}

func (db *DB) RemoveProjectMember(ctx context.Context, projectID, userID string) error {
	_, err := db.ExecContext(ctx, `
		DELETE FROM project_members WHERE project_id = ? AND user_id = ?
	`, projectID, userID)
	return err
}

// DeleteProject detaches members and tasks, then removes the project row.
// Tasks are kept with a cleared project reference, not cascade-deleted.
func (db *DB) DeleteProject(ctx context.Context, id string) error {
	return db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM project_members WHERE project_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE tasks SET project_id = NULL WHERE project_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
		return err
	})
}

func (db *DB) getProject(ctx context.Context, query string, args ...any) (*model.Project, error) {
	var p model.Project
	err := db.QueryRowContext(ctx, query, args...).Scan(
		&p.ProjectID, &p.Title, &p.Description, &p.AdminID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (db *DB) loadProjectMembers(ctx context.Context, projectID string) ([]model.User, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT u.id, u.username, u.password, u.created_at
		FROM users u
		JOIN project_members m ON m.user_id = u.id
		WHERE m.project_id = ?
		ORDER BY u.username
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Username, &u.Password, &u.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, u)
	}
	return members, rows.Err()
}

func (db *DB) loadProjectTasks(ctx context.Context, projectID string) ([]model.Task, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, description, status, admin_id, resolver_id, project_id, created_at, updated_at
		FROM tasks WHERE project_id = ?
		ORDER BY created_at
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}
