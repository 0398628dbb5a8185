package models

type AccountStatus int

const (
	AccountInactive AccountStatus = 0
	AccountActive   AccountStatus = 1
)

type User struct {
	UserID        int           `json:"UserId"`
	Username      string        `json:"Username"`
	Email         string        `json:"Email"`
	FullName      string        `json:"FullName"`
	RoleID        Role          `json:"RoleId"`
	RoleName      string        `json:"RoleName"`
	AccountStatus AccountStatus `json:"AccountStatus"`
}

func (u User) SearchFields() []string {
	return []string{u.Username, u.Email, u.FullName, u.RoleName}
}
