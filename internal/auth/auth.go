// Package auth gates administrator operations behind the shared passcode and
// issues short-lived bearer tokens for the admin HTTP API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Passcode holds the bcrypt hash of the administrator passcode
type Passcode struct {
	hash []byte
}

func NewPasscode(plain string) (*Passcode, error) {
	if plain == "" {
		return nil, errors.New("admin passcode must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin passcode: %w", err)
	}
	return &Passcode{hash: hashed}, nil
}

// Check returns domain.ErrUnauthorized when the passcode does not match
func (p *Passcode) Check(plain string) error {
	if err := bcrypt.CompareHashAndPassword(p.hash, []byte(plain)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) GenerateToken() (string, time.Time, error) {
	issued := i.now()
	expires := issued.Add(i.ttl)
	claims := Claims{
		Role: adminSubject,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

func (i *Issuer) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role != adminSubject {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
