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
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lagnam/matrimony-service/internal/system/config"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
	"github.com/lagnam/matrimony-service/internal/wallet/model"
	"github.com/lagnam/matrimony-service/internal/wallet/store"
)

// LedgerStore is the slice of the wallet store the service depends on.
type LedgerStore interface {
	GetUser(id string) (*usermodel.User, error)
	ApplyUnlock(ownerID string, cost int, tx usermodel.Transaction, unlock usermodel.ProfileUnlock) (bool, error)
	ApplyCredit(ownerID string, amount int, tx usermodel.Transaction) (bool, error)
}

type WalletServiceInterface interface {
	Balance(ownerID string) (*model.BalanceResult, error)
	Unlock(ownerID, targetID string) (*model.UnlockResult, error)
	Credit(ownerID string, req model.CreditRequest) (*model.CreditResult, error)
	Transactions(ownerID string, limit, skip int) (*model.TransactionList, error)
	UnlockedProfiles(ownerID string) (*model.UnlockedProfilesList, error)
}

// WalletService is the default implementation of WalletServiceInterface.
type WalletService struct {
	store LedgerStore
}

// GetWalletService returns a wallet service backed by the Mongo wallet
// store.
func GetWalletService() WalletServiceInterface {
	return &WalletService{
		store: store.DefaultWalletStore(),
	}
}

func (s *WalletService) Balance(ownerID string) (*model.BalanceResult, error) {

	owner, err := s.owner(ownerID)
	if err != nil {
		return nil, err
	}
	return &model.BalanceResult{
		Balance:          owner.Wallet.Balance,
		ProfilesUnlocked: len(owner.Wallet.ProfilesUnlocked),
		Transactions:     len(owner.Wallet.Transactions),
	}, nil
}

// Unlock debits the unlock cost and records the target as unlocked.
// Replaying an unlock of the same target is a no-op that reports the
// current balance without a second debit.
func (s *WalletService) Unlock(ownerID, targetID string) (*model.UnlockResult, error) {

	if targetID == "" {
		return nil, errors2.NewClientError(errors2.ErrMissingRequiredField, http.StatusBadRequest)
	}
	if targetID == ownerID {
		return nil, errors2.NewClientError(errors2.ErrSelfUnlock, http.StatusBadRequest)
	}

	owner, err := s.owner(ownerID)
	if err != nil {
		return nil, err
	}

	target, err := s.store.GetUser(targetID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if target == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	if owner.HasUnlocked(targetID) {
		return &model.UnlockResult{
			TargetID:        targetID,
			AlreadyUnlocked: true,
			Balance:         owner.Wallet.Balance,
			CoinsUsed:       0,
		}, nil
	}

	cost := config.GetConfig().Wallet.UnlockCost
	if owner.Wallet.Balance < cost {
		return nil, insufficientBalanceError(owner.Wallet.Balance, cost)
	}

	now := time.Now()
	tx := usermodel.Transaction{
		ID:            uuid.New().String(),
		Type:          usermodel.TransactionDebit,
		Amount:        cost,
		Description:   "Profile unlock",
		RelatedUserID: targetID,
		CreatedAt:     now,
	}
	unlock := usermodel.ProfileUnlock{UserID: targetID, UnlockedAt: now}

	applied, err := s.store.ApplyUnlock(ownerID, cost, tx, unlock)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileUpdatingWallet, err)
	}
	if !applied {
		// The guarded update lost a race: either a concurrent unlock
		// of the same target landed first, or the balance dropped.
		current, err := s.owner(ownerID)
		if err != nil {
			return nil, err
		}
		if current.HasUnlocked(targetID) {
			return &model.UnlockResult{
				TargetID:        targetID,
				AlreadyUnlocked: true,
				Balance:         current.Wallet.Balance,
				CoinsUsed:       0,
			}, nil
		}
		return nil, insufficientBalanceError(current.Wallet.Balance, cost)
	}

	log.GetLogger().Info("Profile unlocked",
		log.String("owner", ownerID),
		log.String("target", targetID),
		log.Int("cost", cost))

	return &model.UnlockResult{
		TargetID:        targetID,
		AlreadyUnlocked: false,
		Balance:         owner.Wallet.Balance - cost,
		CoinsUsed:       cost,
	}, nil
}

// Credit adds coins to the wallet and appends the matching ledger entry.
func (s *WalletService) Credit(ownerID string, req model.CreditRequest) (*model.CreditResult, error) {

	if req.Amount <= 0 {
		return nil, errors2.NewClientError(errors2.ErrInvalidCreditAmount, http.StatusBadRequest)
	}

	owner, err := s.owner(ownerID)
	if err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = "Coins added"
	}
	tx := usermodel.Transaction{
		ID:          uuid.New().String(),
		Type:        usermodel.TransactionCredit,
		Amount:      req.Amount,
		Description: description,
		CreatedAt:   time.Now(),
	}

	applied, err := s.store.ApplyCredit(ownerID, req.Amount, tx)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileUpdatingWallet, err)
	}
	if !applied {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	return &model.CreditResult{
		Balance: owner.Wallet.Balance + req.Amount,
		Amount:  req.Amount,
	}, nil
}

// Transactions slices the ledger newest first by limit/skip offsets.
// The ledger lives inside the user document, so paging happens in
// memory.
func (s *WalletService) Transactions(ownerID string, limit, skip int) (*model.TransactionList, error) {

	if limit < 1 || skip < 0 {
		return nil, errors2.NewClientError(errors2.ErrInvalidPagination, http.StatusBadRequest)
	}

	owner, err := s.owner(ownerID)
	if err != nil {
		return nil, err
	}

	ledger := make([]usermodel.Transaction, len(owner.Wallet.Transactions))
	copy(ledger, owner.Wallet.Transactions)
	sort.SliceStable(ledger, func(i, j int) bool {
		return ledger[i].CreatedAt.After(ledger[j].CreatedAt)
	})

	total := len(ledger)
	start := skip
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &model.TransactionList{
		Transactions: ledger[start:end],
		TotalCount:   total,
		Limit:        limit,
		Skip:         skip,
		HasMore:      end < total,
	}, nil
}

func (s *WalletService) UnlockedProfiles(ownerID string) (*model.UnlockedProfilesList, error) {

	owner, err := s.owner(ownerID)
	if err != nil {
		return nil, err
	}
	return &model.UnlockedProfilesList{
		Profiles: owner.Wallet.ProfilesUnlocked,
		Total:    len(owner.Wallet.ProfilesUnlocked),
	}, nil
}

func (s *WalletService) owner(ownerID string) (*usermodel.User, error) {
	owner, err := s.store.GetUser(ownerID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if owner == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}
	return owner, nil
}

func insufficientBalanceError(currentBalance, required int) error {
	msg := errors2.ErrInsufficientBalance
	msg.Description = fmt.Sprintf("current balance is %d, %d required", currentBalance, required)
	return errors2.NewClientError(msg, http.StatusConflict)
}
