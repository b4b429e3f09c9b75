package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password
var ErrInvalidCredentials = errors.New("invalid email or password")

// Claims are the JWT claims of an admin session
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService authenticates back-office admins
type AuthService struct {
	admins repository.AdminRepositoryInterface
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewAuthService creates an auth service issuing tokens valid for ttl
func NewAuthService(admins repository.AdminRepositoryInterface, secret string, ttl time.Duration, issuer string) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{admins: admins, secret: []byte(secret), ttl: ttl, issuer: issuer, now: time.Now}
}

// Login checks the password and issues an access token
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.IssueToken(admin)
	if err != nil {
		return nil, err
	}
	if err := s.admins.TouchLogin(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return &models.LoginResponse{AccessToken: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

// IssueToken signs an HS256 token for admin
func (s *AuthService) IssueToken(admin *models.AdminUser) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		AdminID: admin.ID.String(),
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseToken validates a token and returns its claims
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.AdminID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Me returns the admin behind a set of claims
func (s *AuthService) Me(ctx context.Context, claims *Claims) (*models.AdminUser, error) {
	return s.admins.GetByID(ctx, claims.AdminID)
}

// EnsureBootstrapAdmin creates the first admin when the table is empty.
// It returns true when an account was created.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, email, password, name string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return false, nil
	}
	n, err := s.admins.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	admin := &models.AdminUser{Email: email, Name: name, PasswordHash: string(hash)}
	if err := s.admins.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
