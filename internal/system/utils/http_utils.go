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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	customerrors "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error.
// Client errors carry their own status code and payload; everything else
// is reported as an opaque internal error.
func HandleError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var clientError *customerrors.ClientError
	if errors.As(err, &clientError) {
		w.WriteHeader(clientError.StatusCode)
		_ = json.NewEncoder(w).Encode(struct {
			Code        string `json:"code"`
			Message     string `json:"message"`
			Description string `json:"description,omitempty"`
		}{
			Code:        clientError.Code,
			Message:     clientError.Message,
			Description: clientError.Description,
		})
		return
	}

	logger := log.GetLogger()
	logger.Error("Request failed with server error", log.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Internal server error",
	})
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// DecodeJSONBody decodes the request body into dst and maps failures to a
// client error with a readable description.
func DecodeJSONBody(r *http.Request, resourceName string, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return customerrors.NewClientError(customerrors.ErrorMessage{
			Code:        customerrors.ErrInvalidRequestBody.Code,
			Message:     customerrors.ErrInvalidRequestBody.Message,
			Description: HandleDecodeError(err, resourceName),
		}, http.StatusBadRequest)
	}
	return nil
}
