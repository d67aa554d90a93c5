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
	"github.com/lagnam/matrimony-service/internal/user/handler"
)

type UserService struct {
	userHandler *handler.UserHandler
}

func NewUserService(mux *http.ServeMux, apiBasePath string) *UserService {

	instance := &UserService{
		userHandler: handler.NewUserHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *UserService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/users/me", apiBasePath),
		authn.RequireAuth(s.userHandler.GetOwnProfile))
	mux.HandleFunc(fmt.Sprintf("PUT %s/users/me", apiBasePath),
		authn.RequireAuth(s.userHandler.UpdateProfile))
	mux.HandleFunc(fmt.Sprintf("DELETE %s/users/me", apiBasePath),
		authn.RequireAuth(s.userHandler.DeleteAccount))
	mux.HandleFunc(fmt.Sprintf("PUT %s/users/me/onboarding/{step}", apiBasePath),
		authn.RequireAuth(s.userHandler.UpdateOnboardingStep))
	mux.HandleFunc(fmt.Sprintf("GET %s/users/{id}", apiBasePath),
		authn.RequireAuth(s.userHandler.GetPublicProfile))
}
