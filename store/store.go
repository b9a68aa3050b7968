package store

import (
	"context"
	"errors"

	"taskhub/model"
)

// ErrDuplicate is returned when a write violates a uniqueness constraint
// (username, or the project_members composite key). The constraint is what
// makes concurrent addMember calls safe: both may pass the in-memory check,
// only one insert can land.
var ErrDuplicate = errors.New("store: duplicate record")

// Store is the relational collaborator the services operate through. Scoped
// lookups bake the authorization predicate into the query itself and return
// (nil, nil) when the row is absent or invisible to the actor, so callers
// cannot distinguish the two cases.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context, search string) ([]model.User, error)

	CreateProject(ctx context.Context, p *model.Project) error
	// GetProjectByID is the only unscoped project lookup, used when a task
	// admin assigns a task into someone else's project. Tasks are loaded.
	GetProjectByID(ctx context.Context, id string) (*model.Project, error)
	// GetProjectForActor requires the actor to be admin or member. Members
	// and tasks are loaded.
	GetProjectForActor(ctx context.Context, id, actorID string) (*model.Project, error)
	// GetProjectForAdmin requires the actor to be the admin. Members are loaded.
	GetProjectForAdmin(ctx context.Context, id, adminID string) (*model.Project, error)
	ListProjectsByAdmin(ctx context.Context, adminID, search string) ([]model.Project, error)
	AddProjectMember(ctx context.Context, projectID, userID string) error
	RemoveProjectMember(ctx context.Context, projectID, userID string) error
	// DeleteProject detaches members and tasks before removing the project
	// row, all inside one transaction. Tasks survive with a nil project.
	DeleteProject(ctx context.Context, id string) error

	CreateTask(ctx context.Context, t *model.Task) error
	// GetTaskForActor requires the actor to be admin or resolver.
	GetTaskForActor(ctx context.Context, id, actorID string) (*model.Task, error)
	// GetTaskForAdmin requires the actor to be the admin.
	GetTaskForAdmin(ctx context.Context, id, adminID string) (*model.Task, error)
	ListTasksForActor(ctx context.Context, actorID string, status model.TaskStatus, search string) ([]model.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) error
	UpdateTaskResolver(ctx context.Context, id, resolverID string) error
	// AssignTaskToProject moves the task into the project's collection and
	// updates the task's back-reference in the same transaction.
	AssignTaskToProject(ctx context.Context, taskID, projectID string) error
	DeleteTask(ctx context.Context, id string) error
}
