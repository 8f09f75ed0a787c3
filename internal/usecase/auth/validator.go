package auth

import (
	"studio-booking/internal/domain/member"
	"studio-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the auth seam the transport layer depends on.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, member.Role, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, member.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.MemberID, member.Role(claims.Role), nil
}
