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

// CreateProject creates a project owned by the actor. The actor becomes the
// admin and the sole initial member.
func CreateProject(ctx context.Context, s store.Store, req dto.CreateProjectRequest, actorID string) result.Result {
	actor, err := s.GetUserByID(ctx, actorID)
	if err != nil {
		return result.Internal(err)
	}
	if actor == nil {
		return result.Errorf(result.StatusNotFound, "user with id %s not found", actorID)
	}

	now := time.Now()
	project := model.Project{
		ProjectID:   uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		AdminID:     actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Members:     []model.User{*actor},
	}

	if err := s.CreateProject(ctx, &project); err != nil {
		return result.Internal(err)
	}
	return result.Ok(project)
}

// GetProjects returns the projects the actor administers, optionally
// filtered by a case-insensitive search over title and description.
func GetProjects(ctx context.Context, s store.Store, filter dto.GetProjectsFilter, actorID string) result.Result {
	projects, err := s.ListProjectsByAdmin(ctx, actorID, filter.Search)
	if err != nil {
		return result.Internal(err)
	}
	return result.Ok(projects)
}

// GetProjectByID returns a project visible to the actor, with members and
// tasks populated. A project owned by someone else that the actor is not a
// member of reads as not found, existence is never confirmed to outsiders.
func GetProjectByID(ctx context.Context, s store.Store, id, actorID string) result.Result {
	project, err := s.GetProjectForActor(ctx, id, actorID)
	if err != nil {
		return result.Internal(err)
	}
	if project == nil {
		return result.Errorf(result.StatusNotFound, "project with id %s not found", id)
	}
	return result.Ok(*project)
}

// AddMember appends a user to the project's member set. Admin only; the same
// user cannot be added twice.
func AddMember(ctx context.Context, s store.Store, projectID, memberID, actorID string) result.Result {
	project, err := s.GetProjectForAdmin(ctx, projectID, actorID)
	if err != nil {
		return result.Internal(err)
	}
	if project == nil {
		return result.Errorf(result.StatusNotFound, "project with id %s not found", projectID)
	}

	member, err := s.GetUserByID(ctx, memberID)
	if err != nil {
		return result.Internal(err)
	}
	if member == nil {
		return result.Errorf(result.StatusNotFound, "user with id %s not found", memberID)
	}

	if project.HasMember(member.UserID) {
		return result.Errorf(result.StatusBadRequest,
			"user with id %s is already a member of project with id %s", memberID, projectID)
	}

	// The composite key backs up the check above: two concurrent adds for
	// the same user collapse into one row and one BAD_REQUEST.
	if err := s.AddProjectMember(ctx, projectID, member.UserID); err != nil {
		if err == store.ErrDuplicate {
			return result.Errorf(result.StatusBadRequest,
				"user with id %s is already a member of project with id %s", memberID, projectID)
		}
		return result.Internal(err)
	}
	return result.Ok(*member)
}

// RemoveMember removes a user from the project's member set. Admin only.
func RemoveMember(ctx context.Context, s store.Store, projectID, memberID, actorID string) result.Result {
	project, err := s.GetProjectForAdmin(ctx, projectID, actorID)
	if err != nil {
		return result.Internal(err)
	}
	if project == nil {
		return result.Errorf(result.StatusNotFound, "project with id %s not found", projectID)
	}

	member, err := s.GetUserByID(ctx, memberID)
	if err != nil {
		return result.Internal(err)
	}
	if member == nil {
		return result.Errorf(result.StatusNotFound, "user with id %s not found", memberID)
	}

	if !project.HasMember(member.UserID) {
		return result.Errorf(result.StatusBadRequest,
			"user with id %s isn't assigned to project with id %s", memberID, projectID)
	}

	if err := s.RemoveProjectMember(ctx, projectID, member.UserID); err != nil {
		return result.Internal(err)
	}
	return result.Ok(*member)
}

// DeleteProject removes a project the actor administers. Members and tasks
// are detached first; tasks survive without a project reference.
func DeleteProject(ctx context.Context, s store.Store, id, actorID string) result.Result {
	project, err := s.GetProjectForAdmin(ctx, id, actorID)
	if err != nil {
		return result.Internal(err)
	}
	if project == nil {
		return result.Errorf(result.StatusNotFound, "project with id %s not found", id)
	}

	if err := s.DeleteProject(ctx, id); err != nil {
		return result.Internal(err)
	}
	return result.Ok(nil)
}
