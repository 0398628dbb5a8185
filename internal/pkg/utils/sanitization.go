package utils

import (
	"intake-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(request *requests.Login) {
	request.Username = strings.TrimSpace(request.Username)
}

func SanitizeRegisterRequest(request *requests.Register) {
	request.Username = strings.TrimSpace(request.Username)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.FullName = strings.TrimSpace(request.FullName)
	request.Mobile = strings.TrimSpace(request.Mobile)
	request.PostalAddress = strings.TrimSpace(request.PostalAddress)
}

func SanitizeUpdateUserRequest(request *requests.UpdateUser) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.FullName = strings.TrimSpace(request.FullName)
}
