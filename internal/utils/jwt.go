// internal/utils/jwt.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/configs"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	zlog "github.com/rs/zerolog/log"
)

// ClaimsLocalKey adalah key c.Locals tempat middleware Protected menyimpan claims.
const ClaimsLocalKey = "user"

// JwtClaims berisi data identitas yang ikut di dalam token.
type JwtClaims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager menandatangani dan memvalidasi token HS256.
// Secret disuntikkan dari config, bukan dibaca dari env saat package di-load.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewJWTManager(cfg configs.JWTConfig) *JWTManager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &JWTManager{secret: []byte(cfg.Secret), ttl: ttl, issuer: cfg.Issuer}
}

// Generate membuat token baru dan mengembalikan waktu kedaluwarsanya.
func (m *JWTManager) Generate(uid, email, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := JwtClaims{
		UID:   uid,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		zlog.Error().Err(err).Msg("Error signing JWT token")
		return "", time.Time{}, fmt.Errorf("error signing token: %w", err)
	}

	zlog.Debug().Str("uid", uid).Str("role", role).Msg("Generated JWT token")
	return signed, expiresAt, nil
}

// Validate mem-parsing token dan memastikan algoritma HMAC.
func (m *JWTManager) Validate(tokenString string) (*JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			zlog.Warn().Interface("algorithm", token.Header["alg"]).Msg("Unexpected signing method during JWT validation")
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(*JwtClaims)
	if !ok || !token.Valid || claims.UID == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ExtractToken mengambil token dari header "Authorization: Bearer <token>".
// Untuk koneksi SSE (EventSource tidak bisa set header) query ?access_token= juga diterima.
func ExtractToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		zlog.Warn().Str("path", c.Path()).Msg("Invalid Authorization header format (Expected 'Bearer <token>')")
		return ""
	}
	return c.Query("access_token")
}

// ClaimsFromCtx mengambil claims yang disimpan middleware Protected.
func ClaimsFromCtx(c *fiber.Ctx) (*JwtClaims, error) {
	claims, ok := c.Locals(ClaimsLocalKey).(*JwtClaims)
	if !ok || claims == nil {
		zlog.Error().Str("path", c.Path()).Msg("Could not extract user claims from Fiber context (middleware issue?)")
		return nil, fmt.Errorf("could not extract user claims from context")
	}
	return claims, nil
}

// ParseIntParam membaca parameter path numerik, misal :year dan :month.
func ParseIntParam(c *fiber.Ctx, name string) (int, error) {
	raw := c.Params(name)
	if raw == "" {
		return 0, fmt.Errorf("missing parameter '%s'", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		zlog.Warn().Str("param", name).Str("value", raw).Str("path", c.Path()).Msg("Invalid numeric path parameter")
		return 0, fmt.Errorf("invalid parameter '%s': not a number", name)
	}
	return n, nil
}
