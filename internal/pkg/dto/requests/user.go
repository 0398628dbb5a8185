package requests

type UpdateUser struct {
	Email    string `json:"Email,omitempty" validate:"omitempty,email"`
	FullName string `json:"FullName,omitempty" validate:"omitempty,max=100"`
	RoleID   int    `json:"RoleId,omitempty" validate:"omitempty,min=1,max=5"`
}

type UpdateAccountStatus struct {
	AccountStatus *int `json:"AccountStatus" validate:"required,min=0,max=1"`
}
