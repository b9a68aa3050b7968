package dto

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type GetProjectsFilter struct {
	Search string `form:"search"`
}
