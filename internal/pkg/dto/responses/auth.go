package responses

import "intake-service/internal/app/models"

type Login struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type Register struct {
	UserID int `json:"UserId"`
}

// LoginRecord is the record shape inside the backend's login data array.
type LoginRecord struct {
	models.User
	Token string `json:"Token"`
}
