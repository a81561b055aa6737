package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subscription-items/internal/config"
	"subscription-items/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "subscription-items"

var (
	ErrMissingToken = errors.New("authorization token is missing")
	ErrExpiredToken = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid jwt token")
)

// Authenticator issues and validates HS256 bearer tokens for the API.
type Authenticator struct {
	secret []byte
	logger *observability.Logger
}

func New(cfg config.AuthConfig, logger *observability.Logger) *Authenticator {
	return &Authenticator{secret: []byte(cfg.JWTSecret), logger: logger}
}

// IssueToken signs a token for subject valid for ttl.
func (a *Authenticator) IssueToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		Audience:  jwt.ClaimStrings{issuer},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// ValidateToken parses token and returns its claims.
func (a *Authenticator) ValidateToken(ctx context.Context, token string) (*jwt.RegisteredClaims, error) {
	var claims jwt.RegisteredClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			a.logger.Warn(ctx, "token expired")
			return nil, ErrExpiredToken
		}
		a.logger.Warn(ctx, "failed to parse token: "+err.Error())
		return nil, ErrInvalidToken
	}
	if !t.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
