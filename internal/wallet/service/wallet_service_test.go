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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
	"github.com/lagnam/matrimony-service/internal/wallet/model"
)

// MockLedgerStore implements LedgerStore for testing
type MockLedgerStore struct {
	mock.Mock
}

func (m *MockLedgerStore) GetUser(id string) (*usermodel.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodel.User), args.Error(1)
}

func (m *MockLedgerStore) ApplyUnlock(ownerID string, cost int, tx usermodel.Transaction, unlock usermodel.ProfileUnlock) (bool, error) {
	args := m.Called(ownerID, cost, tx, unlock)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerStore) ApplyCredit(ownerID string, amount int, tx usermodel.Transaction) (bool, error) {
	args := m.Called(ownerID, amount, tx)
	return args.Bool(0), args.Error(1)
}

func walletOwner(balance int) *usermodel.User {
	u := usermodel.NewUser("owner", "owner@example.com", "hashed", "9999999999", "Owner")
	u.Wallet.Balance = balance
	return u
}

func TestUnlockDebitsAndRecords(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockLedgerStore)
	svc := WalletService{store: mockStore}

	mockStore.On("GetUser", "owner").Return(walletOwner(50), nil)
	mockStore.On("GetUser", "target").Return(walletOwner(0), nil)
	mockStore.On("ApplyUnlock", "owner", 10,
		mock.MatchedBy(func(tx usermodel.Transaction) bool {
			return tx.Type == usermodel.TransactionDebit &&
				tx.Amount == 10 &&
				tx.RelatedUserID == "target"
		}),
		mock.MatchedBy(func(u usermodel.ProfileUnlock) bool {
			return u.UserID == "target"
		})).Return(true, nil)

	result, err := svc.Unlock("owner", "target")

	assert.NoError(t, err)
	assert.False(t, result.AlreadyUnlocked)
	assert.Equal(t, 40, result.Balance)
	assert.Equal(t, 10, result.CoinsUsed)
	mockStore.AssertExpectations(t)
}

func TestUnlockIsIdempotent(t *testing.T) {
	mockStore := new(MockLedgerStore)
	svc := WalletService{store: mockStore}

	owner := walletOwner(40)
	owner.Wallet.ProfilesUnlocked = []usermodel.ProfileUnlock{
		{UserID: "target", UnlockedAt: time.Now()},
	}
	mockStore.On("GetUser", "owner").Return(owner, nil)
	mockStore.On("GetUser", "target").Return(walletOwner(0), nil)

	result, err := svc.Unlock("owner", "target")

	assert.NoError(t, err)
	assert.True(t, result.AlreadyUnlocked)
	assert.Equal(t, 40, result.Balance)
	assert.Equal(t, 0, result.CoinsUsed)
	mockStore.AssertNotCalled(t, "ApplyUnlock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlockInsufficientBalance(t *testing.T) {
	mockStore := new(MockLedgerStore)
	svc := WalletService{store: mockStore}

	mockStore.On("GetUser", "owner").Return(walletOwner(4), nil)
	mockStore.On("GetUser", "target").Return(walletOwner(0), nil)

	_, err := svc.Unlock("owner", "target")

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusConflict, clientErr.StatusCode)
	assert.Equal(t, errors2.ErrInsufficientBalance.Code, clientErr.ErrorMessage.Code)
	assert.Contains(t, clientErr.ErrorMessage.Description, "4")
	assert.Contains(t, clientErr.ErrorMessage.Description, "10")
}

func TestUnlockSelf(t *testing.T) {
	svc := WalletService{store: new(MockLedgerStore)}

	_, err := svc.Unlock("owner", "owner")

	var clientErr *errors2.ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.ErrSelfUnlock.Code, clientErr.ErrorMessage.Code)
}

func TestUnlockLostRaceResolvesAsAlreadyUnlocked(t *testing.T) {
	log.Init("DEBUG")

	mockStore := new(MockLedgerStore)
	svc := WalletService{store: mockStore}

	// First read shows the target locked, the guarded write loses the
	// race, and the re-read shows another request unlocked it.
	fresh := walletOwner(50)
	raced := walletOwner(40)
	raced.Wallet.ProfilesUnlocked = []usermodel.ProfileUnlock{
		{UserID: "target", UnlockedAt: time.Now()},
	}
	mockStore.On("GetUser", "owner").Return(fresh, nil).Once()
	mockStore.On("GetUser", "target").Return(walletOwner(0), nil).Once()
	mockStore.On("ApplyUnlock", "owner", 10, mock.Anything, mock.Anything).Return(false, nil)
	mockStore.On("GetUser", "owner").Return(raced, nil).Once()

	result, err := svc.Unlock("owner", "target")

	assert.NoError(t, err)
	assert.True(t, result.AlreadyUnlocked)
	assert.Equal(t, 40, result.Balance)
	mockStore.AssertExpectations(t)
}

func TestCreditRejectsNonPositiveAmounts(t *testing.T) {
	svc := WalletService{store: new(MockLedgerStore)}

	for _, amount := range []int{0, -5} {
		_, err := svc.Credit("owner", model.CreditRequest{Amount: amount})

		var clientErr *errors2.ClientError
		assert.ErrorAs(t, err, &clientErr)
		assert.Equal(t, errors2.ErrInvalidCreditAmount.Code, clientErr.ErrorMessage.Code)
	}
}

func TestCreditAppendsLedgerEntry(t *testing.T) {
	mockStore := new(MockLedgerStore)
	svc := WalletService{store: mockStore}

	mockStore.On("GetUser", "owner").Return(walletOwner(10), nil)
	mockStore.On("ApplyCredit", "owner", 25, mock.MatchedBy(func(tx usermodel.Transaction) bool {
		return tx.Type == usermodel.TransactionCredit && tx.Amount == 25 && tx.Description == "Recharge"
	})).Return(true, nil)

	result, err := svc.Credit("owner", model.CreditRequest{Amount: 25, Description: "Recharge"})

	assert.NoError(t, err)
	assert.Equal(t, 35, result.Balance)
	mockStore.AssertExpectations(t)
}

func TestTransactionsPageNewestFirst(t *testing.T) {
	mockStore := new(MockLedgerStore)
	svc := WalletService{store: mockStore}

	now := time.Now()
	owner := walletOwner(100)
	for i := 0; i < 5; i++ {
		owner.Wallet.Transactions = append(owner.Wallet.Transactions, usermodel.Transaction{
			ID:        string(rune('a' + i)),
			Type:      usermodel.TransactionCredit,
			Amount:    i + 1,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
	}
	mockStore.On("GetUser", "owner").Return(owner, nil)

	result, err := svc.Transactions("owner", 2, 0)

	assert.NoError(t, err)
	assert.Equal(t, 5, result.TotalCount)
	assert.True(t, result.HasMore)
	assert.Len(t, result.Transactions, 2)
	assert.Equal(t, "e", result.Transactions[0].ID)
	assert.Equal(t, "d", result.Transactions[1].ID)

	// Skipping into the middle continues the newest-first order.
	middle, err := svc.Transactions("owner", 2, 2)
	assert.NoError(t, err)
	assert.Equal(t, "c", middle.Transactions[0].ID)
	assert.Equal(t, "b", middle.Transactions[1].ID)

	// Past-the-end offsets come back empty rather than erroring.
	last, err := svc.Transactions("owner", 2, 10)
	assert.NoError(t, err)
	assert.Empty(t, last.Transactions)
	assert.False(t, last.HasMore)
}

func TestTransactionsRejectsBadOffsets(t *testing.T) {
	mockStore := new(MockLedgerStore)
	svc := WalletService{store: mockStore}

	for _, args := range [][2]int{{0, 0}, {-1, 0}, {10, -1}} {
		_, err := svc.Transactions("owner", args[0], args[1])

		var clientErr *errors2.ClientError
		assert.ErrorAs(t, err, &clientErr)
		assert.Equal(t, errors2.ErrInvalidPagination.Code, clientErr.ErrorMessage.Code)
	}
	mockStore.AssertNotCalled(t, "GetUser", mock.Anything)
}
