package service

import (
	"context"
	"errors"
	"time"

	"anicms/internal/auth"
	"anicms/internal/authz"
	"anicms/internal/config"
	"anicms/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)

// Claims carries the actor identity and capability grants in the session
// token, so capability checks need no database round trip per request.
type Claims struct {
	UserID  string   `json:"uid"`
	Name    string   `json:"name"`
	Admin   bool     `json:"admin"`
	Caps    []string `json:"caps,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`
	jwt.RegisteredClaims
}

// Actor builds the request actor from the validated claims.
func (c *Claims) Actor() authz.Actor {
	grants := make([]authz.Capability, 0, len(c.Caps))
	for _, g := range c.Caps {
		grants = append(grants, authz.Capability(g))
	}
	return authz.NewActor(c.UserID, c.Admin, grants)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *models.User, err error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type authService struct {
	users           UserFinder
	jwtSecret       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewAuthService(users UserFinder, cfg *config.Config) AuthService {
	return &authService{
		users:           users,
		jwtSecret:       cfg.JWTSecret,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// Login authenticates a user and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// dummy compare so a missing account takes as long as a wrong password
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(user, s.accessTokenTTL, false)
	if err != nil {
		return "", "", nil, err
	}
	refreshToken, err := s.generateToken(user, s.refreshTokenTTL, true)
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, user, nil
}

// RefreshAccessToken exchanges a valid refresh token for a fresh access
// token, reloading the user so revoked grants stop working at rotation.
func (s *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.ValidateToken(refreshToken)
	if err != nil {
		return "", err
	}
	if !claims.Refresh {
		return "", ErrInvalidToken
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", ErrInvalidToken
	}
	return s.generateToken(user, s.accessTokenTTL, false)
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) generateToken(user *models.User, ttl time.Duration, refresh bool) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		Name:    user.Name,
		Admin:   user.HasRole(models.RoleAdmin),
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if !refresh {
		claims.Caps = grantedCapabilities(user)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// grantedCapabilities flattens role-derived and direct permission grants.
func grantedCapabilities(user *models.User) []string {
	seen := make(map[string]struct{})
	var caps []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		caps = append(caps, name)
	}
	for _, role := range user.Roles {
		for _, p := range role.Permissions {
			add(p.Name)
		}
	}
	for _, p := range user.Permissions {
		add(p.Name)
	}
	return caps
}
