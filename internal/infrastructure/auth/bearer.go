package auth

import (
	"strings"

	pkgerrors "github.com/honeynil/coffee-token-inspector/pkg/errors"
)

// TokenFromHeader extracts the token from an "Authorization: Bearer <token>" value.
func TokenFromHeader(value string) (string, error) {
	if value == "" {
		return "", pkgerrors.ErrMissingAuthHeader
	}
	parts := strings.Split(value, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", pkgerrors.ErrInvalidAuthHeader
	}
	return parts[1], nil
}
