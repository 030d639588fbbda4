package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zhuoyaazh/my-pixel-world/internal/apperror"
)

const sessionClaim = "sid"

type AuthService interface {
	GenerateToken(sessionID string) (string, error)
	VerifyToken(token, sessionID string) error
}

type authServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewAuthService(secretKey string, ttl time.Duration) AuthService {
	return &authServiceImpl{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// GenerateToken - signs a token that grants access to one game session.
func (that *authServiceImpl) GenerateToken(sessionID string) (string, error) {
	now := that.now()

	claims := jwt.MapClaims{
		sessionClaim: sessionID,
		"iat":        now.Unix(),
		"exp":        now.Add(that.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(that.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken - checks the signature, expiry and that the token belongs to sessionID.
func (that *authServiceImpl) VerifyToken(tokenString, sessionID string) error {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return that.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(that.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: expired", apperror.ErrInvalidToken)
		}

		return fmt.Errorf("%w: %w", apperror.ErrInvalidToken, err)
	}

	if sid, _ := claims[sessionClaim].(string); sid != sessionID {
		return fmt.Errorf("%w: token is for another session", apperror.ErrInvalidToken)
	}

	return nil
}
