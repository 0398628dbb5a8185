package utils

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"strconv"
)

// SessionFromContext returns the authenticated session placed on the
// request context by the Authenticate middleware.
func SessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || !session.IsAuthenticated() {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

func ParseIntParam(raw, paramName string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, paramName)
	}
	return value, nil
}

// PageParams reads page and pageSize query values, falling back to page
// one and the configured default size.
func PageParams(pageRaw, pageSizeRaw string, defaultPageSize int) (page, pageSize int) {
	page, err := strconv.Atoi(pageRaw)
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err = strconv.Atoi(pageSizeRaw)
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
