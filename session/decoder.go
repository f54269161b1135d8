package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/aston-csic/csic-go/domain"
)

// The API issues tokens with either short claim names or the .NET
// vendor-namespaced ones, depending on server version; try both.
const (
	claimSubject    = "sub"
	claimSubjectAlt = "nameid"
	claimSubjectNS  = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimEmail      = "email"
	claimEmailNS    = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	claimName       = "name"
	claimRole       = "role"
	claimRoleNS     = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

var ErrInvalidCredential = errors.New("invalid credential")

// DecodeCredential derives an Identity from the credential. The token is
// self-contained and the client holds no signing key, so the signature is
// not verified here; the server re-checks it on every request anyway.
func DecodeCredential(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		return domain.Identity{}, fmt.Errorf("%w: token expired", ErrInvalidCredential)
	}

	identity := domain.Identity{
		ID:       stringClaim(claims, claimSubject, claimSubjectAlt, claimSubjectNS),
		Email:    stringClaim(claims, claimEmail, claimEmailNS),
		FullName: stringClaim(claims, claimName),
		Role:     roleClaim(claims),
	}
	if identity.ID == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing subject claim", ErrInvalidCredential)
	}

	return identity, nil
}

func stringClaim(claims jwt.MapClaims, names ...string) string {
	for _, name := range names {
		if value, ok := claims[name].(string); ok && value != "" {
			return value
		}
	}

	return ""
}

// roleClaim downgrades to the default role instead of failing: a missing or
// unmapped role claim must never block authentication.
func roleClaim(claims jwt.MapClaims) domain.Role {
	raw := stringClaim(claims, claimRole, claimRoleNS)
	if raw == "" {
		zap.L().Warn("credential carries no role claim, defaulting",
			zap.String("role", string(domain.DefaultRole)))
		return domain.DefaultRole
	}

	role, err := domain.ParseRole(raw)
	if err != nil {
		zap.L().Warn("credential carries an unmapped role claim, defaulting",
			zap.String("claim", raw),
			zap.String("role", string(domain.DefaultRole)))
		return domain.DefaultRole
	}

	return role
}
