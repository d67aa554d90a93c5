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

package model

import (
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
)

// BalanceResult is the wallet summary view.
type BalanceResult struct {
	Balance          int `json:"balance"`
	ProfilesUnlocked int `json:"profilesUnlocked"`
	Transactions     int `json:"transactions"`
}

// UnlockResult reports an unlock. AlreadyUnlocked distinguishes the
// idempotent replay from a fresh debit.
type UnlockResult struct {
	TargetID        string `json:"targetId"`
	AlreadyUnlocked bool   `json:"alreadyUnlocked"`
	Balance         int    `json:"balance"`
	CoinsUsed       int    `json:"coinsUsed"`
}

// CreditRequest is the payload for adding coins to a wallet.
type CreditRequest struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

// CreditResult reports the balance after a credit.
type CreditResult struct {
	Balance int `json:"balance"`
	Amount  int `json:"amount"`
}

// TransactionList is one slice of the ledger, newest first. The ledger
// pages by limit/skip offsets.
type TransactionList struct {
	Transactions []usermodel.Transaction `json:"transactions"`
	TotalCount   int                     `json:"totalCount"`
	Limit        int                     `json:"limit"`
	Skip         int                     `json:"skip"`
	HasMore      bool                    `json:"hasMore"`
}

// UnlockedProfilesList names the profiles the owner has paid to view.
type UnlockedProfilesList struct {
	Profiles []usermodel.ProfileUnlock `json:"profiles"`
	Total    int                       `json:"total"`
}
