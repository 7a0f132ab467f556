package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenLifetime é o tempo de vida do access token. Constante de
// política, não configurável por chamada.
const AccessTokenLifetime = 120 * time.Minute

// Config chave simétrica e identidade do emissor. Issuer e Audience entram
// nos claims e são conferidos no Parse.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
}

// Claims inclui os claims registrados mais os campos da aplicação. Subject
// carrega o id do usuário; Role permite ao middleware RBAC decidir sem
// consultar o banco.
type Claims struct {
	jwt.RegisteredClaims
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Nome     string `json:"nome"`
	Role     string `json:"role"`
}

// UserID devolve o Subject convertido para int64.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Generate emite um access token HS256 com os claims do usuário, jti único e
// expiração em AccessTokenLifetime. Devolve também o instante de expiração.
func Generate(cfg Config, userID int64, userName, email, nome, role string) (string, time.Time, error) {
	if cfg.Secret == "" {
		return "", time.Time{}, fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	expiresAt := now.Add(AccessTokenLifetime)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserName: userName,
		Email:    email,
		Nome:     nome,
		Role:     role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse valida assinatura, expiração, issuer e audience, e devolve os claims.
func Parse(cfg Config, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithAudience(cfg.Audience))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
