package model

import "time"

type Project struct {
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AdminID     string    `json:"adminId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Loaded relations, populated by scoped lookups.
	Members []User `json:"members,omitempty"`
	Tasks   []Task `json:"tasks,omitempty"`
}

// HasMember reports whether the user already belongs to the project's
// member set. The admin is a member from creation.
func (p *Project) HasMember(userID string) bool {
	for _, m := range p.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
