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

package managers

import (
	"net/http"

	"github.com/lagnam/matrimony-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {

	return &ServiceManager{
		mux: mux,
	}
}

// RegisterServices mounts every API surface on the mux.
func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	services.NewHealthService(sm.mux)
	services.NewAppConfigService(sm.mux, apiBasePath)
	services.NewAuthService(sm.mux, apiBasePath)
	services.NewUserService(sm.mux, apiBasePath)
	services.NewMatchService(sm.mux, apiBasePath)
	services.NewConnectionService(sm.mux, apiBasePath)
	services.NewWalletService(sm.mux, apiBasePath)
	services.NewAdminService(sm.mux, apiBasePath)

	return nil
}
