package services

import (
	"errors"

	"backend/models"
	"backend/repositories"
	"backend/utils"

	"github.com/sirupsen/logrus"
)

type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserExists) {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"op":       "register_user",
			"username": username,
		}).WithError(err).Error("storage failure")
		return nil, &StorageError{Op: "register user", Err: err}
	}

	logrus.WithField("username", username).Info("user registered")
	return user, nil
}

func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logrus.WithField("username", username).Warn("login failed")
			return "", ErrInvalidCredentials
		}
		logrus.WithFields(logrus.Fields{
			"op":       "login_user",
			"username": username,
		}).WithError(err).Error("storage failure")
		return "", &StorageError{Op: "login user", Err: err}
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		logrus.WithField("username", username).Warn("login failed")
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return "", err
	}

	logrus.WithField("username", username).Info("user logged in")
	return token, nil
}
