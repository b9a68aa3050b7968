package dto

type UserResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type SearchUsersFilter struct {
	Search string `form:"search"`
}
