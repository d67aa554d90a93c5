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

	"github.com/lagnam/matrimony-service/internal/match/model"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
)

// MockCandidateStore implements CandidateStore for testing
type MockCandidateStore struct {
	mock.Mock
}

func (m *MockCandidateStore) FindByID(id string) (*usermodel.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodel.User), args.Error(1)
}

func (m *MockCandidateStore) Count(filter bson.M) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCandidateStore) FindPage(filter bson.M, skip, limit int64, sort bson.D) ([]usermodel.User, error) {
	args := m.Called(filter, skip, limit, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usermodel.User), args.Error(1)
}

func maleRequester() *usermodel.User {
	return &usermodel.User{
		ID: "requester-1",
		BasicInfo: usermodel.BasicInfo{
			Name:   "Arun",
			Age:    29,
			Gender: usermodel.GenderMale,
		},
		Preferences: usermodel.PartnerPreferences{
			AgeRange: usermodel.AgeRange{Min: 24, Max: 32},
			Religion: []string{"hindu"},
		},
		Requests: []usermodel.ConnectionRequest{
			{UserID: "already-sent", Direction: usermodel.RequestDirectionSent, Status: usermodel.RequestStatusPending},
			{UserID: "already-received", Direction: usermodel.RequestDirectionReceived, Status: usermodel.RequestStatusAccepted},
		},
	}
}

func TestRecommendExcludesSelfAndRequestCounterparties(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockCandidateStore)
	svc := RecommendationService{store: mockStore}

	mockStore.On("FindByID", "requester-1").Return(maleRequester(), nil)

	queryMatcher := mock.MatchedBy(func(q bson.M) bool {
		nin := q["_id"].(bson.M)["$nin"].([]string)
		return assert.ObjectsAreEqual([]string{"requester-1", "already-sent", "already-received"}, nin) &&
			q["isActive"] == true &&
			q["isProfileComplete"] == true &&
			q["basicInfo.gender"] == usermodel.GenderFemale
	})
	mockStore.On("Count", queryMatcher).Return(int64(0), nil)
	mockStore.On("FindPage", queryMatcher, int64(0), int64(10), bson.D(nil)).
		Return([]usermodel.User{}, nil)

	result, err := svc.Recommend("requester-1", model.Filters{}, 1, 10)

	assert.NoError(t, err)
	assert.Empty(t, result.Users)
	assert.Equal(t, int64(0), result.TotalCount)
	assert.False(t, result.HasMore)
	mockStore.AssertExpectations(t)
}

func TestRecommendRanksPageByDescendingScore(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockCandidateStore)
	svc := RecommendationService{store: mockStore}

	requester := maleRequester()
	mockStore.On("FindByID", "requester-1").Return(requester, nil)

	// Two in-preference candidates and one that misses the religion
	// criterion. The store returns them unsorted.
	candidates := []usermodel.User{
		{
			ID:           "partial",
			BasicInfo:    usermodel.BasicInfo{Age: 26, Gender: usermodel.GenderFemale},
			CulturalInfo: usermodel.CulturalInfo{Religion: "jain"},
		},
		{
			ID:           "perfect",
			BasicInfo:    usermodel.BasicInfo{Age: 27, Gender: usermodel.GenderFemale},
			CulturalInfo: usermodel.CulturalInfo{Religion: "hindu"},
		},
	}
	mockStore.On("Count", mock.Anything).Return(int64(2), nil)
	mockStore.On("FindPage", mock.Anything, int64(0), int64(10), bson.D(nil)).
		Return(candidates, nil)

	result, err := svc.Recommend("requester-1", model.Filters{}, 1, 10)

	assert.NoError(t, err)
	assert.Len(t, result.Users, 2)
	assert.Equal(t, "perfect", result.Users[0].ID)
	assert.Equal(t, 100, result.Users[0].MatchScore)
	assert.Equal(t, "partial", result.Users[1].ID)
	assert.Equal(t, 80, result.Users[1].MatchScore)
	assert.Equal(t, 1, result.TotalPages)
	mockStore.AssertExpectations(t)
}

func TestRecommendCallerFiltersOverrideStoredPreferences(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockCandidateStore)
	svc := RecommendationService{store: mockStore}

	mockStore.On("FindByID", "requester-1").Return(maleRequester(), nil)

	queryMatcher := mock.MatchedBy(func(q bson.M) bool {
		ageRange := q["basicInfo.age"].(bson.M)
		return q["culturalInfo.religion"] == "muslim" &&
			ageRange["$gte"] == 30 && ageRange["$lte"] == 40
	})
	mockStore.On("Count", queryMatcher).Return(int64(0), nil)
	mockStore.On("FindPage", queryMatcher, int64(0), int64(10), bson.D(nil)).
		Return([]usermodel.User{}, nil)

	filters := model.Filters{Religion: "muslim", MinAge: 30, MaxAge: 40}
	_, err := svc.Recommend("requester-1", filters, 1, 10)

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestRecommendPaginationMath(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockCandidateStore)
	svc := RecommendationService{store: mockStore}

	mockStore.On("FindByID", "requester-1").Return(maleRequester(), nil)
	mockStore.On("Count", mock.Anything).Return(int64(25), nil)
	mockStore.On("FindPage", mock.Anything, int64(10), int64(10), bson.D(nil)).
		Return([]usermodel.User{}, nil)

	result, err := svc.Recommend("requester-1", model.Filters{}, 2, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(25), result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
	assert.True(t, result.HasMore)
	mockStore.AssertExpectations(t)
}

func TestRecommendRejectsBadPagination(t *testing.T) {
	log.Init("DEBUG")

	svc := RecommendationService{store: new(MockCandidateStore)}

	_, err := svc.Recommend("requester-1", model.Filters{}, 0, 10)

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}

func TestRecommendUnknownRequester(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockCandidateStore)
	svc := RecommendationService{store: mockStore}

	mockStore.On("FindByID", "ghost").Return(nil, nil)

	_, err := svc.Recommend("ghost", model.Filters{}, 1, 10)

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}
