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

	"github.com/lagnam/matrimony-service/internal/auth/handler"
	"github.com/lagnam/matrimony-service/internal/system/authn"
)

type AuthService struct {
	authHandler *handler.AuthHandler
}

func NewAuthService(mux *http.ServeMux, apiBasePath string) *AuthService {

	instance := &AuthService{
		authHandler: handler.NewAuthHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *AuthService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("POST %s/auth/register", apiBasePath), s.authHandler.Register)
	mux.HandleFunc(fmt.Sprintf("POST %s/auth/login", apiBasePath), s.authHandler.Login)
	mux.HandleFunc(fmt.Sprintf("GET %s/auth/me", apiBasePath), authn.RequireAuth(s.authHandler.Me))
}
