package requests

type Login struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register is forwarded to the records backend as an URL-encoded form.
type Register struct {
	Username      string `json:"Username" validate:"required,alphanum,min=3,max=50"`
	Email         string `json:"Email" validate:"required,email"`
	Password      string `json:"Password" validate:"required,min=8"`
	FullName      string `json:"FullName" validate:"required,max=100"`
	DOB           string `json:"DOB" validate:"required,datetime=01/02/2006"`
	Gender        string `json:"Gender" validate:"required,oneof=Male Female Other"`
	Mobile        string `json:"Mobile" validate:"required,numeric,min=7,max=15"`
	PostalAddress string `json:"PostalAddress" validate:"required,max=250"`
}
