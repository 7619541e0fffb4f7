package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
)

// AccessClaims são as claims do access token
type AccessClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer implementa ports.TokenIssuer com HS256 e segredo compartilhado
type JWTIssuer struct {
	secret       []byte
	issuer       string
	refreshBytes int
	now          func() time.Time
}

// NewJWTIssuer cria o emissor de tokens. refreshBytes é o tamanho do refresh token antes do hex.
func NewJWTIssuer(secret, issuer string, refreshBytes int) *JWTIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		issuer:       issuer,
		refreshBytes: refreshBytes,
		now:          time.Now,
	}
}

// IssueAccessToken assina um token com id, username e role
func (i *JWTIssuer) IssueAccessToken(identity ports.Identity, ttl time.Duration) (string, error) {
	now := i.now()
	claims := AccessClaims{
		Username: identity.Username,
		Role:     string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken valida assinatura, algoritmo e expiração.
// Qualquer falha retorna errors.ErrInvalidToken.
func (i *JWTIssuer) VerifyAccessToken(tokenStr string) (*ports.Identity, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	role := entities.Role(claims.Role)
	if claims.Subject == "" || !role.IsValid() {
		return nil, apperrors.ErrInvalidToken
	}

	return &ports.Identity{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     role,
	}, nil
}

// IssueRefreshToken gera um segredo opaco aleatório codificado em hex
func (i *JWTIssuer) IssueRefreshToken() (string, error) {
	buf := make([]byte, i.refreshBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
