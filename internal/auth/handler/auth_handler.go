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

	"github.com/lagnam/matrimony-service/internal/auth/model"
	"github.com/lagnam/matrimony-service/internal/auth/provider"
	"github.com/lagnam/matrimony-service/internal/system/authn"
	"github.com/lagnam/matrimony-service/internal/system/utils"
	userprovider "github.com/lagnam/matrimony-service/internal/user/provider"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Register creates a new account.
func (ah *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {

	var req model.RegisterRequest
	if err := utils.DecodeJSONBody(r, "registration", &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	authService := provider.NewAuthProvider().GetAuthService()
	result, err := authService.Register(req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, result)
}

// Login exchanges credentials for an access token.
func (ah *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {

	var req model.LoginRequest
	if err := utils.DecodeJSONBody(r, "login", &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	authService := provider.NewAuthProvider().GetAuthService()
	result, err := authService.Login(req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// Me returns the profile behind the presented token.
func (ah *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {

	userService := userprovider.NewUserProvider().GetUserService()
	user, err := userService.GetOwnProfile(authn.UserIDFromRequest(r))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}
