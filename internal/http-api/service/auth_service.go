package service

import (
	"errors"
	"strings"
	"time"

	"leaguehub/internal/auth"
	"leaguehub/internal/config"
	"leaguehub/internal/http-api/models"
	"leaguehub/internal/http-api/repository"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session payload carried in the signed cookie.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(username, email, password string) (*models.User, error)
	Login(username, password string) (token string, user *models.User, err error)
	ValidateToken(tokenString string) (*Claims, error)
	GetProfile(userID string) (*models.User, error)
	SessionTTL() time.Duration
}

type authService struct {
	userRepo   repository.UserRepository
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtSecret:  cfg.JWTSecret,
		sessionTTL: cfg.SessionTTL, // 7 days
	}
}

// Register creates a new user with the given username, email, and password.
func (s *authService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, NewValidationError("All fields are required.")
	}

	// Pre-checks give the friendly error; the unique indexes on
	// username and email remain the authoritative guard underneath.
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUserExists
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a signed session token.
func (s *authService) Login(username, password string) (string, *models.User, error) {
	if username == "" || password == "" {
		return "", nil, NewValidationError("All fields are required.")
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		// dummy compare so unknown users take the same time as bad passwords
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateSessionToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) generateSessionToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *authService) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *authService) SessionTTL() time.Duration {
	return s.sessionTTL
}
