package dto

type CreateTaskRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	ResolverUserID string `json:"resolverUserId"`
	ProjectID      string `json:"projectId"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN IN_PROGRESS DONE"`
}

type UpdateTaskResolverRequest struct {
	ResolverUserID string `json:"resolverUserId" binding:"required"`
}

type UpdateTaskProjectRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
}

type GetTasksFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS DONE"`
	Search string `form:"search"`
}
