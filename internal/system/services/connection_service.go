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

	"github.com/lagnam/matrimony-service/internal/connection/handler"
	"github.com/lagnam/matrimony-service/internal/system/authn"
)

type ConnectionService struct {
	connectionHandler *handler.ConnectionHandler
}

func NewConnectionService(mux *http.ServeMux, apiBasePath string) *ConnectionService {

	instance := &ConnectionService{
		connectionHandler: handler.NewConnectionHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *ConnectionService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/connections", apiBasePath),
		authn.RequireAuth(s.connectionHandler.GetOverview))
	mux.HandleFunc(fmt.Sprintf("POST %s/connections", apiBasePath),
		authn.RequireAuth(s.connectionHandler.SendRequest))
	mux.HandleFunc(fmt.Sprintf("GET %s/connections/requests", apiBasePath),
		authn.RequireAuth(s.connectionHandler.GetRequests))
	mux.HandleFunc(fmt.Sprintf("PUT %s/connections/requests/{id}", apiBasePath),
		authn.RequireAuth(s.connectionHandler.RespondRequest))
	mux.HandleFunc(fmt.Sprintf("GET %s/connections/matches", apiBasePath),
		authn.RequireAuth(s.connectionHandler.GetMatches))
	mux.HandleFunc(fmt.Sprintf("DELETE %s/connections/{id}", apiBasePath),
		authn.RequireAuth(s.connectionHandler.RemoveConnection))
}
