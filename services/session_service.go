package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the anonymous session id that namespaces a
// browser's cart and theme keys. There is no account behind it.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionService signs and verifies the cart session cookie.
type SessionService struct {
	secretKey string
}

var sessionService *SessionService

// InitSessionService initializes the session service with a secret key
func InitSessionService(secretKey string) error {
	if secretKey == "" {
		return errors.New("session secret key cannot be empty")
	}
	sessionService = &SessionService{secretKey: secretKey}
	return nil
}

// GetSessionService returns the initialized session service
func GetSessionService() *SessionService {
	if sessionService == nil {
		// Fallback to environment variable if not initialized
		secretKey := os.Getenv("SESSION_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		sessionService = &SessionService{secretKey: secretKey}
	}
	return sessionService
}

// IssueSessionToken creates a signed token for a new session.
// Tokens expire in 30 days; an expired cookie just means a fresh cart.
func (s *SessionService) IssueSessionToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("sessionID cannot be empty")
	}

	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(30 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "sakr-store",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifySessionToken parses a session cookie and returns the session
// id, or an error for anything invalid or expired.
func (s *SessionService) VerifySessionToken(tokenString string) (string, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.SessionID, nil
}
