package services

import (
	"context"
	"testing"
	"time"

	"taskhub/dto"
	"taskhub/model"
	"taskhub/result"
	"taskhub/store"

	"github.com/google/uuid"
)

func newTestUser(t *testing.T, s store.Store, username string) *model.User {
	t.Helper()
	u := &model.User{
		UserID:    uuid.New().String(),
		Username:  username,
		Password:  "hashed",
		CreatedAt: time.Now(),
	}
	if err := s.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return u
}

func createTestProject(t *testing.T, s store.Store, title, description, adminID string) model.Project {
	t.Helper()
	r := CreateProject(context.Background(), s, dto.CreateProjectRequest{
		Title:       title,
		Description: description,
	}, adminID)
	if r.IsError() {
		t.Fatalf("CreateProject failed: %v", r.Error.Message)
	}
	return r.Data.(model.Project)
}

func TestCreateProjectAdminIsSoleMember(t *testing.T) {
	s := store.NewMemory()
	admin := newTestUser(t, s, "alice")

	project := createTestProject(t, s, "Demo", "desc", admin.UserID)

	if project.AdminID != admin.UserID {
		t.Errorf("AdminID = %s, want %s", project.AdminID, admin.UserID)
	}
	if len(project.Members) != 1 || project.Members[0].UserID != admin.UserID {
		t.Errorf("Members = %v, want only the admin", project.Members)
	}
}

func TestGetProjectByIDHiddenFromOutsiders(t *testing.T) {
	s := store.NewMemory()
	admin := newTestUser(t, s, "alice")
	outsider := newTestUser(t, s, "mallory")
	project := createTestProject(t, s, "Demo", "desc", admin.UserID)

	r := GetProjectByID(context.Background(), s, project.ProjectID, outsider.UserID)
	if !r.IsError() {
		t.Fatal("expected error for non-member actor")
	}
	if r.Error.Status != result.StatusNotFound {
		t.Errorf("Status = %s, want NOT_FOUND", r.Error.Status)
	}
}

func TestAddMemberTwiceRejected(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	admin := newTestUser(t, s, "alice")
	member := newTestUser(t, s, "bob")
	project := createTestProject(t, s, "Demo", "desc", admin.UserID)

	r := AddMember(ctx, s, project.ProjectID, member.UserID, admin.UserID)
	if r.IsError() {
		t.Fatalf("first AddMember failed: %v", r.Error.Message)
	}
	added := r.Data.(model.User)
	if added.UserID != member.UserID {
		t.Errorf("returned member = %s, want %s", added.UserID, member.UserID)
	}

	r = AddMember(ctx, s, project.ProjectID, member.UserID, admin.UserID)
	if !r.IsError() || r.Error.Status != result.StatusBadRequest {
		t.Fatalf("second AddMember = %+v, want BAD_REQUEST", r)
	}

	fetched := GetProjectByID(ctx, s, project.ProjectID, admin.UserID)
	if fetched.IsError() {
		t.Fatalf("GetProjectByID failed: %v", fetched.Error.Message)
	}
	count := 0
	for _, m := range fetched.Data.(model.Project).Members {
		if m.UserID == member.UserID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("member appears %d times, want exactly once", count)
	}
}

func TestAddMemberAuthorization(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	admin := newTestUser(t, s, "alice")
	member := newTestUser(t, s, "bob")
	project := createTestProject(t, s, "Demo", "desc", admin.UserID)

	// A non-admin actor sees the project as missing, not forbidden.
	r := AddMember(ctx, s, project.ProjectID, member.UserID, member.UserID)
	if !r.IsError() || r.Error.Status != result.StatusNotFound {
		t.Fatalf("AddMember by non-admin = %+v, want NOT_FOUND", r)
	}

	// Unknown candidate user.
	r = AddMember(ctx, s, project.ProjectID, "no-such-user", admin.UserID)
	if !r.IsError() || r.Error.Status != result.StatusNotFound {
		t.Fatalf("AddMember with unknown user = %+v, want NOT_FOUND", r)
	}
}

func TestRemoveThenAddMemberRestoresMembership(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	admin := newTestUser(t, s, "alice")
	member := newTestUser(t, s, "bob")
	project := createTestProject(t, s, "Demo", "desc", admin.UserID)

	if r := AddMember(ctx, s, project.ProjectID, member.UserID, admin.UserID); r.IsError() {
		t.Fatalf("AddMember failed: %v", r.Error.Message)
	}
	r := RemoveMember(ctx, s, project.ProjectID, member.UserID, admin.UserID)
	if r.IsError() {
		t.Fatalf("RemoveMember failed: %v", r.Error.Message)
	}
	if removed := r.Data.(model.User); removed.UserID != member.UserID {
		t.Errorf("removed member = %s, want %s", removed.UserID, member.UserID)
	}

	// Removing again is a bad request: the project exists, the edge doesn't.
	r = RemoveMember(ctx, s, project.ProjectID, member.UserID, admin.UserID)
	if !r.IsError() || r.Error.Status != result.StatusBadRequest {
		t.Fatalf("RemoveMember of non-member = %+v, want BAD_REQUEST", r)
	}

	if r := AddMember(ctx, s, project.ProjectID, member.UserID, admin.UserID); r.IsError() {
		t.Fatalf("re-AddMember failed: %v", r.Error.Message)
	}
	fetched := GetProjectByID(ctx, s, project.ProjectID, member.UserID)
	if fetched.IsError() {
		t.Fatalf("member cannot read project after re-add: %v", fetched.Error.Message)
	}
}

func TestDeleteProjectDetachesTasks(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	admin := newTestUser(t, s, "alice")
	project := createTestProject(t, s, "Demo", "desc", admin.UserID)

	r := CreateTask(ctx, s, dto.CreateTaskRequest{
		Title:     "T1",
		ProjectID: project.ProjectID,
	}, admin.UserID)
	if r.IsError() {
		t.Fatalf("CreateTask failed: %v", r.Error.Message)
	}
	task := r.Data.(model.Task)

	if r := DeleteProject(ctx, s, project.ProjectID, admin.UserID); r.IsError() {
		t.Fatalf("DeleteProject failed: %v", r.Error.Message)
	}

	// The task survives the project, with its reference cleared.
	fetched := GetTaskByID(ctx, s, task.TaskID, admin.UserID)
	if fetched.IsError() {
		t.Fatalf("task was deleted with the project: %v", fetched.Error.Message)
	}
	if got := fetched.Data.(model.Task); got.ProjectID != nil {
		t.Errorf("task.ProjectID = %v, want nil after project deletion", *got.ProjectID)
	}
}

func TestDeleteProjectByNonAdmin(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	admin := newTestUser(t, s, "alice")
	member := newTestUser(t, s, "bob")
	project := createTestProject(t, s, "Demo", "desc", admin.UserID)

	if r := AddMember(ctx, s, project.ProjectID, member.UserID, admin.UserID); r.IsError() {
		t.Fatalf("AddMember failed: %v", r.Error.Message)
	}

	// Members can read but not delete.
	if r := GetProjectByID(ctx, s, project.ProjectID, member.UserID); r.IsError() {
		t.Fatalf("member cannot read project: %v", r.Error.Message)
	}
	r := DeleteProject(ctx, s, project.ProjectID, member.UserID)
	if !r.IsError() || r.Error.Status != result.StatusNotFound {
		t.Fatalf("DeleteProject by member = %+v, want NOT_FOUND", r)
	}
}

func TestGetProjectsSearchFilter(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	admin := newTestUser(t, s, "alice")
	other := newTestUser(t, s, "bob")

	createTestProject(t, s, "Website redesign", "landing page", admin.UserID)
	createTestProject(t, s, "Backend", "REST api for the WEBSITE", admin.UserID)
	createTestProject(t, s, "Chores", "errands", admin.UserID)
	createTestProject(t, s, "Website", "not alice's", other.UserID)

	r := GetProjects(ctx, s, dto.GetProjectsFilter{Search: "website"}, admin.UserID)
	if r.IsError() {
		t.Fatalf("GetProjects failed: %v", r.Error.Message)
	}
	projects := r.Data.([]model.Project)
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2 (case-insensitive title/description match, admin scope)", len(projects))
	}

	r = GetProjects(ctx, s, dto.GetProjectsFilter{}, admin.UserID)
	if r.IsError() {
		t.Fatalf("GetProjects failed: %v", r.Error.Message)
	}
	if got := len(r.Data.([]model.Project)); got != 3 {
		t.Fatalf("unfiltered list has %d projects, want 3", got)
	}
}
