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

package handler

import (
	"net/http"

	"github.com/lagnam/matrimony-service/internal/system/authn"
	"github.com/lagnam/matrimony-service/internal/system/pagination"
	"github.com/lagnam/matrimony-service/internal/system/utils"
	"github.com/lagnam/matrimony-service/internal/wallet/model"
	"github.com/lagnam/matrimony-service/internal/wallet/provider"
)

type WalletHandler struct{}

func NewWalletHandler() *WalletHandler {
	return &WalletHandler{}
}

// GetBalance serves the caller's wallet summary.
func (wh *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {

	walletService := provider.NewWalletProvider().GetWalletService()
	result, err := walletService.Balance(authn.UserIDFromRequest(r))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// UnlockProfile spends coins to unlock the profile in the path.
func (wh *WalletHandler) UnlockProfile(w http.ResponseWriter, r *http.Request) {

	walletService := provider.NewWalletProvider().GetWalletService()
	result, err := walletService.Unlock(authn.UserIDFromRequest(r), r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// AddCoins credits the caller's wallet.
func (wh *WalletHandler) AddCoins(w http.ResponseWriter, r *http.Request) {

	var req model.CreditRequest
	if err := utils.DecodeJSONBody(r, "wallet credit", &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	walletService := provider.NewWalletProvider().GetWalletService()
	result, err := walletService.Credit(authn.UserIDFromRequest(r), req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetTransactions pages through the caller's ledger by limit/skip.
func (wh *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {

	limit, err := pagination.ParseLimit(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	skip, err := pagination.ParseSkip(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	walletService := provider.NewWalletProvider().GetWalletService()
	result, err := walletService.Transactions(authn.UserIDFromRequest(r), limit, skip)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetUnlockedProfiles lists the profiles the caller has unlocked.
func (wh *WalletHandler) GetUnlockedProfiles(w http.ResponseWriter, r *http.Request) {

	walletService := provider.NewWalletProvider().GetWalletService()
	result, err := walletService.UnlockedProfiles(authn.UserIDFromRequest(r))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
