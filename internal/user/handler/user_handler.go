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
	"strconv"

	"github.com/lagnam/matrimony-service/internal/system/authn"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/utils"
	"github.com/lagnam/matrimony-service/internal/user/model"
	"github.com/lagnam/matrimony-service/internal/user/provider"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// GetOwnProfile returns the full profile of the authenticated user.
func (uh *UserHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {

	userService := provider.NewUserProvider().GetUserService()
	user, err := userService.GetOwnProfile(authn.UserIDFromRequest(r))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// GetPublicProfile returns the outward-facing view of another profile.
func (uh *UserHandler) GetPublicProfile(w http.ResponseWriter, r *http.Request) {

	targetID := r.PathValue("id")

	userService := provider.NewUserProvider().GetUserService()
	user, err := userService.GetPublicProfile(targetID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// UpdateProfile applies a partial edit to the authenticated user's
// profile.
func (uh *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {

	var update model.ProfileUpdate
	if err := utils.DecodeJSONBody(r, "profile", &update); err != nil {
		utils.HandleError(w, err)
		return
	}

	userService := provider.NewUserProvider().GetUserService()
	user, err := userService.UpdateProfile(authn.UserIDFromRequest(r), update)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// UpdateOnboardingStep writes one guided-setup section.
func (uh *UserHandler) UpdateOnboardingStep(w http.ResponseWriter, r *http.Request) {

	step, err := strconv.Atoi(r.PathValue("step"))
	if err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrInvalidOnboardingStep, http.StatusBadRequest))
		return
	}

	var payload model.OnboardingStep
	if err := utils.DecodeJSONBody(r, "onboarding step", &payload); err != nil {
		utils.HandleError(w, err)
		return
	}

	userService := provider.NewUserProvider().GetUserService()
	result, err := userService.UpdateOnboardingStep(authn.UserIDFromRequest(r), step, payload)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// DeleteAccount removes the authenticated user's account.
func (uh *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {

	userService := provider.NewUserProvider().GetUserService()
	if err := userService.DeleteAccount(authn.UserIDFromRequest(r)); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
