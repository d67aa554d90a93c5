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

	"github.com/lagnam/matrimony-service/internal/connection/model"
	"github.com/lagnam/matrimony-service/internal/connection/provider"
	"github.com/lagnam/matrimony-service/internal/system/authn"
	"github.com/lagnam/matrimony-service/internal/system/utils"
)

type ConnectionHandler struct{}

func NewConnectionHandler() *ConnectionHandler {
	return &ConnectionHandler{}
}

// SendRequest creates a connection request to another user.
func (ch *ConnectionHandler) SendRequest(w http.ResponseWriter, r *http.Request) {

	var req model.SendRequest
	if err := utils.DecodeJSONBody(r, "connection request", &req); err != nil {
		utils.HandleError(w, err)
		return
	}

	connectionService := provider.NewConnectionProvider().GetConnectionService()
	result, err := connectionService.Send(authn.UserIDFromRequest(r), req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, result)
}

// RespondRequest accepts or rejects a pending received request.
func (ch *ConnectionHandler) RespondRequest(w http.ResponseWriter, r *http.Request) {

	req := model.RespondRequest{RequesterID: r.PathValue("id")}
	var body struct {
		Action string `json:"action"`
	}
	if err := utils.DecodeJSONBody(r, "connection response", &body); err != nil {
		utils.HandleError(w, err)
		return
	}
	req.Action = body.Action

	connectionService := provider.NewConnectionProvider().GetConnectionService()
	result, err := connectionService.Respond(authn.UserIDFromRequest(r), req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// RemoveConnection deletes the connection with the given user.
func (ch *ConnectionHandler) RemoveConnection(w http.ResponseWriter, r *http.Request) {

	connectionService := provider.NewConnectionProvider().GetConnectionService()
	err := connectionService.Remove(authn.UserIDFromRequest(r), r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRequests lists the caller's request records, optionally filtered
// by direction and status query parameters.
func (ch *ConnectionHandler) GetRequests(w http.ResponseWriter, r *http.Request) {

	connectionService := provider.NewConnectionProvider().GetConnectionService()
	result, err := connectionService.Requests(authn.UserIDFromRequest(r),
		r.URL.Query().Get("type"), r.URL.Query().Get("status"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetMatches lists the caller's accepted connections.
func (ch *ConnectionHandler) GetMatches(w http.ResponseWriter, r *http.Request) {

	connectionService := provider.NewConnectionProvider().GetConnectionService()
	result, err := connectionService.Matches(authn.UserIDFromRequest(r))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetOverview serves the combined pending-plus-matches view.
func (ch *ConnectionHandler) GetOverview(w http.ResponseWriter, r *http.Request) {

	connectionService := provider.NewConnectionProvider().GetConnectionService()
	result, err := connectionService.Overview(authn.UserIDFromRequest(r))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
