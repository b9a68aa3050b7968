package services

import (
	"context"
	"time"

	"taskhub/dto"
	"taskhub/model"
	"taskhub/result"
	"taskhub/store"

	"github.com/google/uuid"
)

// CreateTask creates a task owned by the actor. The resolver defaults to the
// actor; an explicit resolver or project must exist.
func CreateTask(ctx context.Context, s store.Store, req dto.CreateTaskRequest, actorID string) result.Result {
	now := time.Now()
	task := model.Task{
		TaskID:      uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      model.StatusOpen,
		AdminID:     actorID,
		ResolverID:  actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.ResolverUserID != "" {
		resolver, err := s.GetUserByID(ctx, req.ResolverUserID)
		if err != nil {
			return result.Internal(err)
		}
		if resolver == nil {
			return result.Errorf(result.StatusNotFound, "user with id %s not found", req.ResolverUserID)
		}
		task.ResolverID = resolver.UserID
	}

	if req.ProjectID != "" {
		project, err := s.GetProjectByID(ctx, req.ProjectID)
		if err != nil {
			return result.Internal(err)
		}
		if project == nil {
			return result.Errorf(result.StatusNotFound, "project with id %s not found", req.ProjectID)
		}
		task.ProjectID = &project.ProjectID
	}

	if err := s.CreateTask(ctx, &task); err != nil {
		return result.Internal(err)
	}
	return result.Ok(task)
}

// GetTasks returns tasks where the actor is admin or resolver, optionally
// filtered by exact status and a case-insensitive search over title and
// description.
func GetTasks(ctx context.Context, s store.Store, filter dto.GetTasksFilter, actorID string) result.Result {
	tasks, err := s.ListTasksForActor(ctx, actorID, model.TaskStatus(filter.Status), filter.Search)
	if err != nil {
		return result.Internal(err)
	}
	return result.Ok(tasks)
}

// GetTaskByID returns a task the actor administers or resolves.
func GetTaskByID(ctx context.Context, s store.Store, id, actorID string) result.Result {
	task, err := s.GetTaskForActor(ctx, id, actorID)
	if err != nil {
		return result.Internal(err)
	}
	if task == nil {
		return result.Errorf(result.StatusNotFound, "task with id %s not found", id)
	}
	return result.Ok(*task)
}

// UpdateTaskStatus overwrites the status of a task the actor can read.
// Any status may move to any other.
func UpdateTaskStatus(ctx context.Context, s store.Store, id string, status model.TaskStatus, actorID string) result.Result {
	if !status.Valid() {
		return result.Errorf(result.StatusBadRequest, "invalid task status %q", status)
	}

	fetched := GetTaskByID(ctx, s, id, actorID)
	if fetched.IsError() {
		return fetched
	}
	task := fetched.Data.(model.Task)

	if err := s.UpdateTaskStatus(ctx, id, status); err != nil {
		return result.Internal(err)
	}
	task.Status = status
	return result.Ok(task)
}

// UpdateTaskResolver reassigns who works the task. Admin only, and the new
// resolver must be a real user.
func UpdateTaskResolver(ctx context.Context, s store.Store, id, resolverID, actorID string) result.Result {
	task, err := s.GetTaskForAdmin(ctx, id, actorID)
	if err != nil {
		return result.Internal(err)
	}
	if task == nil {
		return result.Errorf(result.StatusNotFound, "task with id %s not found", id)
	}

	resolver, err := s.GetUserByID(ctx, resolverID)
	if err != nil {
		return result.Internal(err)
	}
	if resolver == nil {
		return result.Errorf(result.StatusNotFound, "user with id %s not found", resolverID)
	}

	if err := s.UpdateTaskResolver(ctx, id, resolver.UserID); err != nil {
		return result.Internal(err)
	}
	task.ResolverID = resolver.UserID
	return result.Ok(*task)
}

// UpdateTaskProject assigns the task to a project. Admin only on the task
// side; assigning to a project the task already belongs to is rejected.
func UpdateTaskProject(ctx context.Context, s store.Store, id, projectID, actorID string) result.Result {
	task, err := s.GetTaskForAdmin(ctx, id, actorID)
	if err != nil {
		return result.Internal(err)
	}
	if task == nil {
		return result.Errorf(result.StatusNotFound, "task with id %s not found", id)
	}

	project, err := s.GetProjectByID(ctx, projectID)
	if err != nil {
		return result.Internal(err)
	}
	if project == nil {
		return result.Errorf(result.StatusNotFound, "project with id %s not found", projectID)
	}

	if task.ProjectID != nil && *task.ProjectID == project.ProjectID {
		return result.Errorf(result.StatusBadRequest,
			"task with id %s belongs already to project %s", id, projectID)
	}

	if err := s.AssignTaskToProject(ctx, id, project.ProjectID); err != nil {
		return result.Internal(err)
	}
	task.ProjectID = &project.ProjectID
	return result.Ok(*task)
}

// DeleteTask removes a task the actor administers.
func DeleteTask(ctx context.Context, s store.Store, id, actorID string) result.Result {
	task, err := s.GetTaskForAdmin(ctx, id, actorID)
	if err != nil {
		return result.Internal(err)
	}
	if task == nil {
		return result.Errorf(result.StatusNotFound, "task with id %s not found", id)
	}

	if err := s.DeleteTask(ctx, id); err != nil {
		return result.Internal(err)
	}
	return result.Ok(nil)
}
