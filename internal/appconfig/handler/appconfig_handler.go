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

	"github.com/lagnam/matrimony-service/internal/appconfig/service"
	"github.com/lagnam/matrimony-service/internal/system/utils"
)

type AppConfigHandler struct{}

func NewAppConfigHandler() *AppConfigHandler {
	return &AppConfigHandler{}
}

// GetClientConfig serves the public bootstrap payload.
func (ah *AppConfigHandler) GetClientConfig(w http.ResponseWriter, r *http.Request) {

	appConfigService := service.GetAppConfigService()
	utils.WriteJSON(w, http.StatusOK, appConfigService.ClientConfig())
}

// GetLanguages lists the supported locales.
func (ah *AppConfigHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {

	appConfigService := service.GetAppConfigService()
	utils.WriteJSON(w, http.StatusOK, appConfigService.Languages())
}

// GetLanguageBundle serves one locale's translated strings.
func (ah *AppConfigHandler) GetLanguageBundle(w http.ResponseWriter, r *http.Request) {

	appConfigService := service.GetAppConfigService()
	bundle, err := appConfigService.LanguageBundle(r.PathValue("lang"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, bundle)
}
