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

package services

import (
	"fmt"
	"net/http"

	"github.com/lagnam/matrimony-service/internal/system/authn"
	"github.com/lagnam/matrimony-service/internal/wallet/handler"
)

type WalletService struct {
	walletHandler *handler.WalletHandler
}

func NewWalletService(mux *http.ServeMux, apiBasePath string) *WalletService {

	instance := &WalletService{
		walletHandler: handler.NewWalletHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *WalletService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/wallet", apiBasePath),
		authn.RequireAuth(s.walletHandler.GetBalance))
	mux.HandleFunc(fmt.Sprintf("POST %s/wallet/coins", apiBasePath),
		authn.RequireAuth(s.walletHandler.AddCoins))
	mux.HandleFunc(fmt.Sprintf("GET %s/wallet/transactions", apiBasePath),
		authn.RequireAuth(s.walletHandler.GetTransactions))
	mux.HandleFunc(fmt.Sprintf("GET %s/wallet/unlocked", apiBasePath),
		authn.RequireAuth(s.walletHandler.GetUnlockedProfiles))
	mux.HandleFunc(fmt.Sprintf("POST %s/wallet/unlock/{id}", apiBasePath),
		authn.RequireAuth(s.walletHandler.UnlockProfile))
}
