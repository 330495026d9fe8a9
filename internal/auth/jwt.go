package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTService struct {
	secret string
	expiry time.Duration
}

type Claims struct {
	Sub string `json:"sub"`
	Rol string `json:"rol"`
	JTI string `json:"jti"`
	jwt.RegisteredClaims
}

func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secret: cfg.JWT.Secret,
		expiry: cfg.JWT.Expiry,
	}
}

func (j *JWTService) GenerarToken(idUsuario int, rol string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(j.expiry)

	claims := Claims{
		Sub: strconv.Itoa(idUsuario),
		Rol: rol,
		JTI: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mesas-examen",
			Audience:  jwt.ClaimStrings{"mesas-examen-api"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString([]byte(j.secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return firmado, int64(j.expiry.Seconds()), nil
}

func (j *JWTService) ValidarToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != "mesas-examen" {
		return nil, fmt.Errorf("invalid issuer")
	}

	return claims, nil
}
