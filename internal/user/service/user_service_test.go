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
	"go.mongodb.org/mongo-driver/bson"

	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	"github.com/lagnam/matrimony-service/internal/user/model"
)

// MockProfileStore implements ProfileStore for testing
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) FindByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockProfileStore) FindPublicByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockProfileStore) UpdateFields(id string, fields bson.M) (bool, error) {
	args := m.Called(id, fields)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileStore) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileStore) PullRequestsReferencing(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func incompleteUser() *model.User {
	return model.NewUser("user-1", "arun@example.com", "hashed", "9999999999", "Arun")
}

func TestIsProfileCompletePredicate(t *testing.T) {
	u := incompleteUser()
	assert.False(t, IsProfileComplete(u))

	u.BasicInfo.Age = 29
	u.BasicInfo.Gender = model.GenderMale
	assert.False(t, IsProfileComplete(u))

	u.CulturalInfo.Religion = "hindu"
	assert.False(t, IsProfileComplete(u))

	// Either education or profession satisfies the career leg.
	u.CareerInfo.Profession = "engineer"
	assert.True(t, IsProfileComplete(u))

	u.CareerInfo.Profession = ""
	u.CareerInfo.Education = "bachelors"
	assert.True(t, IsProfileComplete(u))
}

func TestUpdateProfileRecomputesCompletion(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockProfileStore)
	svc := UserService{store: mockStore}

	u := incompleteUser()
	u.CulturalInfo.Religion = "hindu"
	u.CareerInfo.Education = "bachelors"
	mockStore.On("FindByID", "user-1").Return(u, nil)
	mockStore.On("UpdateFields", "user-1", mock.MatchedBy(func(fields bson.M) bool {
		return fields["isProfileComplete"] == true
	})).Return(true, nil)

	updated, err := svc.UpdateProfile("user-1", model.ProfileUpdate{
		BasicInfo: &model.BasicInfo{Name: "Arun", Age: 29, Gender: model.GenderMale},
	})

	assert.NoError(t, err)
	assert.True(t, updated.IsProfileComplete)
	mockStore.AssertExpectations(t)
}

func TestUpdateProfileCanRevokeCompletion(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockProfileStore)
	svc := UserService{store: mockStore}

	u := incompleteUser()
	u.BasicInfo.Age = 29
	u.BasicInfo.Gender = model.GenderMale
	u.CulturalInfo.Religion = "hindu"
	u.CareerInfo.Education = "bachelors"
	u.IsProfileComplete = true
	mockStore.On("FindByID", "user-1").Return(u, nil)
	mockStore.On("UpdateFields", "user-1", mock.MatchedBy(func(fields bson.M) bool {
		return fields["isProfileComplete"] == false
	})).Return(true, nil)

	updated, err := svc.UpdateProfile("user-1", model.ProfileUpdate{
		CulturalInfo: &model.CulturalInfo{Religion: ""},
	})

	assert.NoError(t, err)
	assert.False(t, updated.IsProfileComplete)
	mockStore.AssertExpectations(t)
}

func TestUpdateProfileRejectsInvalidGender(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockProfileStore)
	svc := UserService{store: mockStore}

	mockStore.On("FindByID", "user-1").Return(incompleteUser(), nil)

	_, err := svc.UpdateProfile("user-1", model.ProfileUpdate{
		BasicInfo: &model.BasicInfo{Name: "Arun", Age: 29, Gender: "robot"},
	})

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, errors2.ErrValidationFailed.Code, clientErr.ErrorMessage.Code)
	mockStore.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
}

func TestUpdateProfileAcceptsSeniorAges(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockProfileStore)
	svc := UserService{store: mockStore}

	mockStore.On("FindByID", "user-1").Return(incompleteUser(), nil)
	mockStore.On("UpdateFields", "user-1", mock.Anything).Return(true, nil)

	// Ages up to 100 are within the configured ceiling.
	_, err := svc.UpdateProfile("user-1", model.ProfileUpdate{
		BasicInfo: &model.BasicInfo{Name: "Arun", Age: 85, Gender: model.GenderMale},
	})

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestUpdateProfileRejectsOutOfRangePhysicals(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockProfileStore)
	svc := UserService{store: mockStore}

	mockStore.On("FindByID", "user-1").Return(incompleteUser(), nil)

	cases := []model.BasicInfo{
		{Name: "Arun", Age: 29, Gender: model.GenderMale, Height: 300},
		{Name: "Arun", Age: 29, Gender: model.GenderMale, Height: 50},
		{Name: "Arun", Age: 29, Gender: model.GenderMale, Weight: 20},
		{Name: "Arun", Age: 29, Gender: model.GenderMale, Weight: 250},
		{Name: "Arun", Age: 101, Gender: model.GenderMale},
	}
	for _, info := range cases {
		info := info
		_, err := svc.UpdateProfile("user-1", model.ProfileUpdate{BasicInfo: &info})

		var clientErr *errors2.ClientError
		assert.ErrorAs(t, err, &clientErr)
		assert.Equal(t, errors2.ErrValidationFailed.Code, clientErr.ErrorMessage.Code)
	}
	mockStore.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
}

func TestUpdateOnboardingFinalStepForcesCompletion(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockProfileStore)
	svc := UserService{store: mockStore}

	// The user skipped the career step, so the predicate alone would
	// not mark the profile complete.
	mockStore.On("FindByID", "user-1").Return(incompleteUser(), nil)
	mockStore.On("UpdateFields", "user-1", mock.MatchedBy(func(fields bson.M) bool {
		return fields["isProfileComplete"] == true
	})).Return(true, nil)

	prefs := model.DefaultPreferences()
	result, err := svc.UpdateOnboardingStep("user-1", 5, model.OnboardingStep{Preferences: &prefs})

	assert.NoError(t, err)
	assert.True(t, result.IsProfileComplete)
	assert.Equal(t, 5, result.Step)
	mockStore.AssertExpectations(t)
}

func TestUpdateOnboardingRejectsUnknownStep(t *testing.T) {
	svc := UserService{store: new(MockProfileStore)}

	_, err := svc.UpdateOnboardingStep("user-1", 6, model.OnboardingStep{})

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrInvalidOnboardingStep.Code, clientErr.ErrorMessage.Code)
}

func TestUpdateOnboardingRejectsMissingSection(t *testing.T) {
	mockStore := new(MockProfileStore)
	svc := UserService{store: mockStore}

	mockStore.On("FindByID", "user-1").Return(incompleteUser(), nil)

	_, err := svc.UpdateOnboardingStep("user-1", 2, model.OnboardingStep{})

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrMissingRequiredField.Code, clientErr.ErrorMessage.Code)
}

func TestGetPublicProfileHidesInactiveUsers(t *testing.T) {
	mockStore := new(MockProfileStore)
	svc := UserService{store: mockStore}

	u := incompleteUser()
	u.IsActive = false
	mockStore.On("FindPublicByID", "user-1").Return(u, nil)

	_, err := svc.GetPublicProfile("user-1")

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func TestDeleteAccountScrubsRequestReferences(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockProfileStore)
	svc := UserService{store: mockStore}

	mockStore.On("Delete", "user-1").Return(true, nil)
	mockStore.On("PullRequestsReferencing", "user-1").Return(nil)

	assert.NoError(t, svc.DeleteAccount("user-1"))
	mockStore.AssertExpectations(t)
}

func TestDeleteAccountUnknownUser(t *testing.T) {
	mockStore := new(MockProfileStore)
	svc := UserService{store: mockStore}

	mockStore.On("Delete", "ghost").Return(false, nil)

	err := svc.DeleteAccount("ghost")

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
	mockStore.AssertNotCalled(t, "PullRequestsReferencing", mock.Anything)
}
