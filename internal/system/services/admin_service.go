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

	"github.com/lagnam/matrimony-service/internal/admin/handler"
	"github.com/lagnam/matrimony-service/internal/system/authn"
)

type AdminService struct {
	adminHandler *handler.AdminHandler
}

func NewAdminService(mux *http.ServeMux, apiBasePath string) *AdminService {

	instance := &AdminService{
		adminHandler: handler.NewAdminHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *AdminService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/admin/users", apiBasePath),
		authn.RequireAdmin(s.adminHandler.ListUsers))
	mux.HandleFunc(fmt.Sprintf("GET %s/admin/stats", apiBasePath),
		authn.RequireAdmin(s.adminHandler.GetStats))
	mux.HandleFunc(fmt.Sprintf("PUT %s/admin/users/{id}/active", apiBasePath),
		authn.RequireAdmin(s.adminHandler.SetActive))
	mux.HandleFunc(fmt.Sprintf("PUT %s/admin/users/{id}/verified", apiBasePath),
		authn.RequireAdmin(s.adminHandler.SetVerified))
	mux.HandleFunc(fmt.Sprintf("DELETE %s/admin/users/{id}", apiBasePath),
		authn.RequireAdmin(s.adminHandler.DeleteUser))
	mux.HandleFunc(fmt.Sprintf("POST %s/admin/users/{id}/coins", apiBasePath),
		authn.RequireAdmin(s.adminHandler.GrantCoins))
}
