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

	"github.com/lagnam/matrimony-service/internal/admin/model"
	"github.com/lagnam/matrimony-service/internal/admin/provider"
	"github.com/lagnam/matrimony-service/internal/system/pagination"
	"github.com/lagnam/matrimony-service/internal/system/utils"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// ListUsers pages through all accounts with optional search and status
// filters.
func (ah *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {

	page, err := pagination.ParsePage(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	limit, err := pagination.ParseLimit(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	adminService := provider.NewAdminProvider().GetAdminService()
	result, err := adminService.ListUsers(page, limit,
		r.URL.Query().Get("search"), r.URL.Query().Get("status"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetStats serves the dashboard counters.
func (ah *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {

	adminService := provider.NewAdminProvider().GetAdminService()
	stats, err := adminService.Stats()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}

// SetActive bans or reinstates the user in the path.
func (ah *AdminHandler) SetActive(w http.ResponseWriter, r *http.Request) {

	var req model.ModerationRequest
	if err := utils.DecodeJSONBody(r, "moderation", &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	adminService := provider.NewAdminProvider().GetAdminService()
	if err := adminService.SetActive(r.PathValue("id"), req.Value); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetVerified toggles the verification badge of the user in the path.
func (ah *AdminHandler) SetVerified(w http.ResponseWriter, r *http.Request) {

	var req model.ModerationRequest
	if err := utils.DecodeJSONBody(r, "moderation", &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	adminService := provider.NewAdminProvider().GetAdminService()
	if err := adminService.SetVerified(r.PathValue("id"), req.Value); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser removes the account in the path.
func (ah *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {

	adminService := provider.NewAdminProvider().GetAdminService()
	if err := adminService.DeleteUser(r.PathValue("id")); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GrantCoins credits the wallet of the user in the path.
func (ah *AdminHandler) GrantCoins(w http.ResponseWriter, r *http.Request) {

	var req model.GrantCoinsRequest
	if err := utils.DecodeJSONBody(r, "coin grant", &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	adminService := provider.NewAdminProvider().GetAdminService()
	result, err := adminService.GrantCoins(r.PathValue("id"), req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
