/*
 * Copyright (c) 2025, Lagnam Technologies.
 *
 * Lagnam Technologies licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lagnam/matrimony-service/internal/auth/model"
	"github.com/lagnam/matrimony-service/internal/system/config"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
	userstore "github.com/lagnam/matrimony-service/internal/user/store"
)

const minPasswordLength = 6

// CredentialStore is the slice of the user store the auth flow depends on.
type CredentialStore interface {
	FindByEmail(email string) (*usermodel.User, error)
	FindByID(id string) (*usermodel.User, error)
	Insert(user *usermodel.User) error
	TouchLastActive(id string) error
}

type AuthServiceInterface interface {
	Register(req model.RegisterRequest) (*model.AuthResult, error)
	Login(req model.LoginRequest) (*model.AuthResult, error)
}

// AuthService is the default implementation of AuthServiceInterface.
type AuthService struct {
	store CredentialStore
}

// GetAuthService returns an auth service backed by the Mongo user store.
func GetAuthService() AuthServiceInterface {
	return &AuthService{
		store: userstore.DefaultUserStore(),
	}
}

// Register creates an account and signs the first access token.
func (s *AuthService) Register(req model.RegisterRequest) (*model.AuthResult, error) {

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, validationError("a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, validationError("password must be at least 6 characters")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationError("name is required")
	}

	existing, err := s.store.FindByEmail(email)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if existing != nil {
		return nil, errors2.NewClientError(errors2.ErrEmailAlreadyRegistered, http.StatusConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileInsertingUser, err)
	}

	user := usermodel.NewUser(uuid.New().String(), email, string(hashed), req.Phone, strings.TrimSpace(req.Name))
	if err := s.store.Insert(user); err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileInsertingUser, err)
	}

	token, err := issueToken(user)
	if err != nil {
		return nil, err
	}

	log.GetLogger().Info("Registered new user", log.String("userId", user.ID))
	return &model.AuthResult{Token: token, User: user}, nil
}

// Login verifies the credentials and signs an access token. Missing
// accounts and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(req model.LoginRequest) (*model.AuthResult, error) {

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.store.FindByEmail(email)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if user == nil {
		return nil, errors2.NewClientError(errors2.ErrInvalidCredentials, http.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors2.NewClientError(errors2.ErrInvalidCredentials, http.StatusUnauthorized)
	}

	if err := s.store.TouchLastActive(user.ID); err != nil {
		log.GetLogger().Warn("Failed to update last active timestamp",
			log.String("userId", user.ID), log.Error(err))
	}

	token, err := issueToken(user)
	if err != nil {
		return nil, err
	}
	return &model.AuthResult{Token: token, User: user}, nil
}

func issueToken(user *usermodel.User) (string, error) {
	cfg := config.GetConfig()

	role := user.Role
	if role == "" {
		role = usermodel.RoleUser
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(cfg.Auth.TokenExpiryMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		return "", errors2.NewServerError(errors2.ErrWhileIssuingToken, err)
	}
	return signed, nil
}

func validationError(description string) error {
	msg := errors2.ErrValidationFailed
	msg.Description = description
	return errors2.NewClientError(msg, http.StatusBadRequest)
}
