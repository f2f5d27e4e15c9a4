// Package identity extracts the viewer's user ID from the platform
// access token. The token is validated server-side on every request; the
// client only needs the subject claim, so the parse here is unverified.
package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

func ViewerID(tokenString string) (string, error) {
	parser := jwt.NewParser()

	claims := &jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", fmt.Errorf("failed to parse access token: %w", err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("access token has no subject claim")
	}

	return claims.Subject, nil
}
