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

	"github.com/lagnam/matrimony-service/internal/appconfig/handler"
)

type AppConfigService struct {
	appConfigHandler *handler.AppConfigHandler
}

func NewAppConfigService(mux *http.ServeMux, apiBasePath string) *AppConfigService {

	instance := &AppConfigService{
		appConfigHandler: handler.NewAppConfigHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

// RegisterRoutes exposes the bootstrap endpoints. They are public:
// clients need them before a user logs in.
func (s *AppConfigService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/config", apiBasePath), s.appConfigHandler.GetClientConfig)
	mux.HandleFunc(fmt.Sprintf("GET %s/config/languages", apiBasePath), s.appConfigHandler.GetLanguages)
	mux.HandleFunc(fmt.Sprintf("GET %s/config/languages/{lang}", apiBasePath), s.appConfigHandler.GetLanguageBundle)
}
