package adminauth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// minSecretLen - короче HS256-секрет не принимаем
const minSecretLen = 16

var ErrInvalidToken = errors.New("invalid admin token")

// Authentication выдаёт и проверяет короткоживущие JWT для админского HTTP API.
// Подписывает тем же ADMIN_TOKEN, что проверяет middleware.
type Authentication struct {
	secretKey []byte
	accessExp time.Duration
	now       func() time.Time
}

func NewAuthentication(secretKey string, accessExp time.Duration) (*Authentication, error) {
	if len(secretKey) < minSecretLen {
		return nil, fmt.Errorf("invalid JWT secret key: must be at least %d bytes", minSecretLen)
	}
	if accessExp <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}

	return &Authentication{
		secretKey: []byte(secretKey),
		accessExp: accessExp,
		now:       time.Now,
	}, nil
}

type Claims struct {
	jwt.RegisteredClaims
	AdminID int64 `json:"admin_id"`
}

// Issue подписывает токен для админа с данным Telegram id
func (a *Authentication) Issue(adminID int64) (string, time.Time, error) {
	now := a.now()
	expires := now.Add(a.accessExp)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(adminID, 10),
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AdminID: adminID,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expires, nil
}

// Validate проверяет подпись и срок, возвращает id админа
func (a *Authentication) Validate(tokenString string) (int64, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secretKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.AdminID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.AdminID, nil
}
