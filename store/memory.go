package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"taskhub/model"
)

// Memory is an in-process Store used as the test double for the services.
// It mirrors the SQLite implementation's contract: scoped lookups return
// (nil, nil) for absent-or-invisible rows, duplicate keys return
// ErrDuplicate, and DeleteProject detaches before removing.
var _ Store = (*Memory)(nil)

type Memory struct {
	mu       sync.Mutex
	users    map[string]model.User
	projects map[string]model.Project
	members  map[string]map[string]bool // project id -> member ids
	tasks    map[string]model.Task
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]model.User),
		projects: make(map[string]model.Project),
		members:  make(map[string]map[string]bool),
		tasks:    make(map[string]model.Task),
	}
}

func (m *Memory) CreateUser(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return ErrDuplicate
		}
	}
	m.users[u.UserID] = *u
	return nil
}

func (m *Memory) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *Memory) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *Memory) ListUsers(ctx context.Context, search string) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []model.User
	for _, u := range m.users {
		if search == "" || containsFold(u.Username, search) {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *Memory) CreateProject(ctx context.Context, p *model.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *p
	stored.Members = nil
	stored.Tasks = nil
	m.projects[p.ProjectID] = stored
	ids := make(map[string]bool)
	for _, member := range p.Members {
		ids[member.UserID] = true
	}
	m.members[p.ProjectID] = ids
	return nil
}

func (m *Memory) GetProjectByID(ctx context.Context, id string) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	p.Tasks = m.projectTasks(id)
	return &p, nil
}

func (m *Memory) GetProjectForActor(ctx context.Context, id, actorID string) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok || (p.AdminID != actorID && !m.members[id][actorID]) {
		return nil, nil
	}
	p.Members = m.projectMembers(id)
	p.Tasks = m.projectTasks(id)
	return &p, nil
}

func (m *Memory) GetProjectForAdmin(ctx context.Context, id, adminID string) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok || p.AdminID != adminID {
		return nil, nil
	}
	p.Members = m.projectMembers(id)
	return &p, nil
}

func (m *Memory) ListProjectsByAdmin(ctx context.Context, adminID, search string) ([]model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var projects []model.Project
	for _, p := range m.projects {
		if p.AdminID != adminID {
			continue
		}
		if search != "" && !containsFold(p.Title, search) && !containsFold(p.Description, search) {
			continue
		}
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects, nil
}

func (m *Memory) AddProjectMember(ctx context.Context, projectID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := m.members[projectID]
	if ids == nil {
		ids = make(map[string]bool)
		m.members[projectID] = ids
	}
	if ids[userID] {
		return ErrDuplicate
	}
	ids[userID] = true
	return nil
}

func (m *Memory) RemoveProjectMember(ctx context.Context, projectID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.members[projectID], userID)
	return nil
}

func (m *Memory) DeleteProject(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.members, id)
	for taskID, t := range m.tasks {
		if t.ProjectID != nil && *t.ProjectID == id {
			t.ProjectID = nil
			m.tasks[taskID] = t
		}
	}
	delete(m.projects, id)
	return nil
}

func (m *Memory) CreateTask(ctx context.Context, t *model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[t.TaskID] = *t
	return nil
}

func (m *Memory) GetTaskForActor(ctx context.Context, id, actorID string) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || (t.AdminID != actorID && t.ResolverID != actorID) {
		return nil, nil
	}
	return &t, nil
}

func (m *Memory) GetTaskForAdmin(ctx context.Context, id, adminID string) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || t.AdminID != adminID {
		return nil, nil
	}
	return &t, nil
}

func (m *Memory) ListTasksForActor(ctx context.Context, actorID string, status model.TaskStatus, search string) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var tasks []model.Task
	for _, t := range m.tasks {
		if t.AdminID != actorID && t.ResolverID != actorID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		if search != "" && !containsFold(t.Title, search) && !containsFold(t.Description, search) {
			continue
		}
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (m *Memory) UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tasks[id]; ok {
		t.Status = status
		m.tasks[id] = t
	}
	return nil
}

func (m *Memory) UpdateTaskResolver(ctx context.Context, id, resolverID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tasks[id]; ok {
		t.ResolverID = resolverID
		m.tasks[id] = t
	}
	return nil
}

func (m *Memory) AssignTaskToProject(ctx context.Context, taskID, projectID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tasks[taskID]; ok {
		id := projectID
		t.ProjectID = &id
		m.tasks[taskID] = t
	}
	return nil
}

func (m *Memory) DeleteTask(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, id)
	return nil
}

// callers must hold mu
func (m *Memory) projectMembers(projectID string) []model.User {
	var members []model.User
	for userID := range m.members[projectID] {
		if u, ok := m.users[userID]; ok {
			members = append(members, u)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Username < members[j].Username })
	return members
}

// callers must hold mu
func (m *Memory) projectTasks(projectID string) []model.Task {
	var tasks []model.Task
	for _, t := range m.tasks {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt.Before(tasks[j].CreatedAt) })
	return tasks
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
