package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"wholesale-delivery/errs"
)

// Roles carried in bearer tokens
const (
	RoleAdmin  = "admin"
	RoleDriver = "driver"
)

// Claims represents the JWT claims. Subject is the account id in hex.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// AccountKey names an account across roles, e.g. "driver:<id>".
func AccountKey(role, subject string) string {
	return role + ":" + subject
}

// Account is the AccountKey of the token holder.
func (c *Claims) Account() string {
	return AccountKey(c.Role, c.Subject)
}

// TokenIssuer signs and verifies HS256 bearer tokens
type TokenIssuer struct {
	key []byte
	ttl time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{key: []byte(secret), ttl: ttl}
}

// TTL is how long issued tokens stay valid.
func (ti *TokenIssuer) TTL() time.Duration {
	return ti.ttl
}

// Issue generates a JWT token for an account
func (ti *TokenIssuer) Issue(subject, role string) (string, error) {
	issuedAt := time.Now()
	claims := &Claims{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(ti.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ti.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// Parse verifies the signature and expiry of tokenStr.
func (ti *TokenIssuer) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return ti.key, nil
	})
	if err != nil || !token.Valid {
		return nil, errs.Wrap(errs.Unauthorized, "Invalid token", err)
	}
	return claims, nil
}
