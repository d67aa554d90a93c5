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

	"github.com/lagnam/matrimony-service/internal/admin/model"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
	walletmodel "github.com/lagnam/matrimony-service/internal/wallet/model"
)

// MockAdminStore implements AdminStore for testing
type MockAdminStore struct {
	mock.Mock
}

func (m *MockAdminStore) Count(filter bson.M) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminStore) FindPage(filter bson.M, skip, limit int64, sort bson.D) ([]usermodel.User, error) {
	args := m.Called(filter, skip, limit, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usermodel.User), args.Error(1)
}

func (m *MockAdminStore) UpdateFields(id string, fields bson.M) (bool, error) {
	args := m.Called(id, fields)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminStore) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminStore) PullRequestsReferencing(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockWalletService implements the wallet service for testing
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) Balance(ownerID string) (*walletmodel.BalanceResult, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*walletmodel.BalanceResult), args.Error(1)
}

func (m *MockWalletService) Unlock(ownerID, targetID string) (*walletmodel.UnlockResult, error) {
	args := m.Called(ownerID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*walletmodel.UnlockResult), args.Error(1)
}

func (m *MockWalletService) Credit(ownerID string, req walletmodel.CreditRequest) (*walletmodel.CreditResult, error) {
	args := m.Called(ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*walletmodel.CreditResult), args.Error(1)
}

func (m *MockWalletService) Transactions(ownerID string, limit, skip int) (*walletmodel.TransactionList, error) {
	args := m.Called(ownerID, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*walletmodel.TransactionList), args.Error(1)
}

func (m *MockWalletService) UnlockedProfiles(ownerID string) (*walletmodel.UnlockedProfilesList, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*walletmodel.UnlockedProfilesList), args.Error(1)
}

func TestListUsersSearchesNameAndEmail(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockAdminStore)
	svc := AdminService{store: mockStore}

	filterMatcher := mock.MatchedBy(func(filter bson.M) bool {
		or, ok := filter["$or"].([]bson.M)
		return ok && len(or) == 2
	})
	mockStore.On("Count", filterMatcher).Return(int64(1), nil)
	mockStore.On("FindPage", filterMatcher, int64(0), int64(20), mock.Anything).
		Return([]usermodel.User{*usermodel.NewUser("u1", "priya@example.com", "hash", "", "Priya")}, nil)

	result, err := svc.ListUsers(1, 20, "priya", "")

	assert.NoError(t, err)
	assert.Len(t, result.Users, 1)
	assert.Equal(t, int64(1), result.TotalCount)
	mockStore.AssertExpectations(t)
}

func TestListUsersFiltersByStatus(t *testing.T) {
	mockStore := new(MockAdminStore)
	svc := AdminService{store: mockStore}

	filterMatcher := mock.MatchedBy(func(filter bson.M) bool {
		active, ok := filter["isActive"].(bool)
		return ok && !active
	})
	mockStore.On("Count", filterMatcher).Return(int64(3), nil)
	mockStore.On("FindPage", filterMatcher, int64(0), int64(20), mock.Anything).
		Return([]usermodel.User{}, nil)

	result, err := svc.ListUsers(1, 20, "", "inactive")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), result.TotalCount)
	mockStore.AssertExpectations(t)
}

func TestStatsCountsEachSegment(t *testing.T) {
	mockStore := new(MockAdminStore)
	svc := AdminService{store: mockStore}

	mockStore.On("Count", bson.M{}).Return(int64(100), nil)
	mockStore.On("Count", bson.M{"isActive": true}).Return(int64(90), nil)
	mockStore.On("Count", bson.M{"isVerified": true}).Return(int64(40), nil)
	mockStore.On("Count", bson.M{"isProfileComplete": true}).Return(int64(70), nil)
	mockStore.On("Count", bson.M{"basicInfo.gender": usermodel.GenderMale}).Return(int64(55), nil)
	mockStore.On("Count", bson.M{"basicInfo.gender": usermodel.GenderFemale}).Return(int64(45), nil)

	stats, err := svc.Stats()

	assert.NoError(t, err)
	assert.Equal(t, int64(100), stats.TotalUsers)
	assert.Equal(t, int64(90), stats.ActiveUsers)
	assert.Equal(t, int64(45), stats.FemaleUsers)
}

func TestSetActiveBansUser(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockAdminStore)
	svc := AdminService{store: mockStore}

	mockStore.On("UpdateFields", "u1", bson.M{"isActive": false}).Return(true, nil)

	assert.NoError(t, svc.SetActive("u1", false))
	mockStore.AssertExpectations(t)
}

func TestSetVerifiedUnknownUser(t *testing.T) {
	mockStore := new(MockAdminStore)
	svc := AdminService{store: mockStore}

	mockStore.On("UpdateFields", "ghost", bson.M{"isVerified": true}).Return(false, nil)

	err := svc.SetVerified("ghost", true)

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func TestDeleteUserCascadesRequestCleanup(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockAdminStore)
	svc := AdminService{store: mockStore}

	mockStore.On("Delete", "u1").Return(true, nil)
	mockStore.On("PullRequestsReferencing", "u1").Return(nil)

	assert.NoError(t, svc.DeleteUser("u1"))
	mockStore.AssertExpectations(t)
}

func TestGrantCoinsDefaultsDescription(t *testing.T) {
	mockWallet := new(MockWalletService)
	svc := AdminService{store: new(MockAdminStore), wallet: mockWallet}

	mockWallet.On("Credit", "u1", walletmodel.CreditRequest{
		Amount:      100,
		Description: "Coins granted by admin",
	}).Return(&walletmodel.CreditResult{Balance: 110, Amount: 100}, nil)

	result, err := svc.GrantCoins("u1", model.GrantCoinsRequest{Amount: 100})

	assert.NoError(t, err)
	assert.Equal(t, 110, result.Balance)
	mockWallet.AssertExpectations(t)
}
