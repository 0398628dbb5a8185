package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// DecodeBase64Image accepts either a bare base64 string or a data URL
// ("data:image/png;base64,....") and returns the raw bytes plus the file
// extension implied by the content type.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	ext := ".jpg"
	if strings.HasPrefix(encoded, "data:") {
		parts := strings.SplitN(encoded, ",", 2)
		if len(parts) != 2 {
			return nil, "", errors.New("malformed data URL")
		}
		header := parts[0]
		encoded = parts[1]
		switch {
		case strings.Contains(header, "image/png"):
			ext = ".png"
		case strings.Contains(header, "image/jpeg"), strings.Contains(header, "image/jpg"):
			ext = ".jpg"
		default:
			return nil, "", fmt.Errorf("unsupported content type in data URL: %s", header)
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", err
	}
	return data, ext, nil
}

func ValidateImageFormat(ext string, allowed []string) error {
	for _, a := range allowed {
		if strings.EqualFold(ext, a) {
			return nil
		}
	}
	return fmt.Errorf("image format %s is not allowed", ext)
}

func ValidateImageSize(data []byte, maxSizeInMB int64) error {
	if int64(len(data)) > maxSizeInMB*1024*1024 {
		return fmt.Errorf("image exceeds maximum size of %dMB", maxSizeInMB)
	}
	return nil
}
