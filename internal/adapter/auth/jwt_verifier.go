package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

type JWTVerifierConfig struct {
	Secret   string
	Audience string
	Leeway   time.Duration
}

// JWTVerifier validates HS256 access tokens issued by the hosted auth service.
// The subject claim carries the user id.
type JWTVerifier struct {
	secret   []byte
	audience string
	leeway   time.Duration
	parser   *jwt.Parser
	now      func() time.Time
}

var _ ports.TokenVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(cfg JWTVerifierConfig, now func() time.Time) (*JWTVerifier, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if now == nil {
		now = time.Now
	}
	return &JWTVerifier{
		secret:   []byte(cfg.Secret),
		audience: cfg.Audience,
		leeway:   cfg.Leeway,
		// Claims are checked in Verify so the leeway applies to exp.
		parser: &jwt.Parser{
			ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
			SkipClaimsValidation: true,
		},
		now: now,
	}, nil
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	if _, err := v.parser.ParseWithClaims(token, claims, v.key); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	now := v.now()
	if !claims.VerifyExpiresAt(now.Add(-v.leeway), true) {
		return uuid.Nil, fmt.Errorf("%w: token expired", domain.ErrUnauthenticated)
	}
	if !claims.VerifyNotBefore(now.Add(v.leeway), false) {
		return uuid.Nil, fmt.Errorf("%w: token not valid yet", domain.ErrUnauthenticated)
	}
	if v.audience != "" && !claims.VerifyAudience(v.audience, true) {
		return uuid.Nil, fmt.Errorf("%w: unexpected audience", domain.ErrUnauthenticated)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid subject", domain.ErrUnauthenticated)
	}
	return userID, nil
}

func (v *JWTVerifier) key(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	return v.secret, nil
}
