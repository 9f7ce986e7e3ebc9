package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const tokenTTL = 24 * time.Hour

// Claims identifies the server-side session a token belongs to.
type Claims struct {
	SessionID string
	UserID    int64
	Username  string
	Role      string
}

type Tokens struct {
	secret []byte
}

func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

func (t *Tokens) Generate(c Claims) (string, error) {
	if c.SessionID == "" {
		return "", errors.New("empty session id passed to Generate")
	}
	if len(t.secret) == 0 {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"sid":      c.SessionID,
		"userID":   c.UserID,
		"username": c.Username,
		"role":     c.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *Tokens) Validate(tokenString string) (*Claims, error) {
	if len(t.secret) == 0 {
		return nil, errors.New("JWT_SECRET not set")
	}

	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, errors.New("token has no session")
	}

	// numeric claims decode as float64
	userID, _ := claims["userID"].(float64)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &Claims{
		SessionID: sid,
		UserID:    int64(userID),
		Username:  username,
		Role:      role,
	}, nil
}
