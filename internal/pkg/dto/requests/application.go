package requests

// UpdateApplication is the single "update application" contract shared by
// every role's approve/reject/complete action.
type UpdateApplication struct {
	ID          int    `json:"ID" validate:"required"`
	StatusID    int    `json:"StatusID" validate:"required,min=1,max=7"`
	RoleID      int    `json:"RoleID" validate:"required,min=1,max=5"`
	Description string `json:"Description,omitempty"`
	ImagePath   string `json:"ImagePath,omitempty"`
}

type ListApplications struct {
	RoleID int `json:"RoleID" validate:"required,min=1,max=5"`
	UserID int `json:"UserID" validate:"required"`
}
