package service

import (
	"fmt"
	"time"

	"github.com/creditdesk/credit-service/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user with hashed password and returns a JWT token
func (s *Service) Register(username, email, password string) (string, *models.User, error) {
	taken, err := s.store.UsernameTaken(username)
	if err != nil {
		return "", nil, err
	}
	if taken {
		return "", nil, models.ErrUsernameTaken
	}
	taken, err = s.store.UserEmailTaken(email)
	if err != nil {
		return "", nil, err
	}
	if taken {
		return "", nil, models.ErrEmailTaken
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.store.CreateUser(user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return token, user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		return "", models.ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return token, nil
}

func (s *Service) generateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
