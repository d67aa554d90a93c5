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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/lagnam/matrimony-service/internal/auth/model"
	"github.com/lagnam/matrimony-service/internal/system/authn"
	"github.com/lagnam/matrimony-service/internal/system/config"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
)

// MockCredentialStore implements CredentialStore for testing
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) FindByEmail(email string) (*usermodel.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodel.User), args.Error(1)
}

func (m *MockCredentialStore) FindByID(id string) (*usermodel.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodel.User), args.Error(1)
}

func (m *MockCredentialStore) Insert(user *usermodel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockCredentialStore) TouchLastActive(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func testConfig() {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenExpiryMinutes = 60
	config.SetConfig(cfg)
}

func TestRegisterIssuesUsableToken(t *testing.T) {
	log.Init("DEBUG")
	testConfig()

	mockStore := new(MockCredentialStore)
	svc := AuthService{store: mockStore}

	mockStore.On("FindByEmail", "arun@example.com").Return(nil, nil)
	mockStore.On("Insert", mock.MatchedBy(func(u *usermodel.User) bool {
		// The stored credential must be a hash, never the raw password.
		return u.Email == "arun@example.com" &&
			u.Password != "secret123" &&
			u.Role == usermodel.RoleUser &&
			u.IsActive
	})).Return(nil)

	result, err := svc.Register(model.RegisterRequest{
		Email:    " Arun@Example.com ",
		Password: "secret123",
		Phone:    "9999999999",
		Name:     "Arun",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "arun@example.com", result.User.Email)

	claims, err := authn.ValidateToken(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, result.User.ID, claims["sub"])
	assert.Equal(t, usermodel.RoleUser, claims["role"])

	mockStore.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	testConfig()

	mockStore := new(MockCredentialStore)
	svc := AuthService{store: mockStore}

	mockStore.On("FindByEmail", "arun@example.com").
		Return(usermodel.NewUser("u1", "arun@example.com", "hash", "", "Arun"), nil)

	_, err := svc.Register(model.RegisterRequest{
		Email:    "arun@example.com",
		Password: "secret123",
		Name:     "Arun",
	})

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusConflict, clientErr.StatusCode)
	assert.Equal(t, errors2.ErrEmailAlreadyRegistered.Code, clientErr.ErrorMessage.Code)
	mockStore.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := AuthService{store: new(MockCredentialStore)}

	_, err := svc.Register(model.RegisterRequest{
		Email:    "arun@example.com",
		Password: "123",
		Name:     "Arun",
	})

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrValidationFailed.Code, clientErr.ErrorMessage.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	testConfig()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	user := usermodel.NewUser("u1", "arun@example.com", string(hashed), "", "Arun")

	mockStore := new(MockCredentialStore)
	svc := AuthService{store: mockStore}
	mockStore.On("FindByEmail", "arun@example.com").Return(user, nil)

	_, err := svc.Login(model.LoginRequest{Email: "arun@example.com", Password: "wrong"})

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
	assert.Equal(t, errors2.ErrInvalidCredentials.Code, clientErr.ErrorMessage.Code)
}

func TestLoginUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	testConfig()

	mockStore := new(MockCredentialStore)
	svc := AuthService{store: mockStore}
	mockStore.On("FindByEmail", "ghost@example.com").Return(nil, nil)

	_, err := svc.Login(model.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrInvalidCredentials.Code, clientErr.ErrorMessage.Code)
}

func TestLoginSuccessTouchesLastActive(t *testing.T) {
	log.Init("DEBUG")
	testConfig()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user := usermodel.NewUser("u1", "arun@example.com", string(hashed), "", "Arun")

	mockStore := new(MockCredentialStore)
	svc := AuthService{store: mockStore}
	mockStore.On("FindByEmail", "arun@example.com").Return(user, nil)
	mockStore.On("TouchLastActive", "u1").Return(nil)

	result, err := svc.Login(model.LoginRequest{Email: "arun@example.com", Password: "secret123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	mockStore.AssertExpectations(t)
}
