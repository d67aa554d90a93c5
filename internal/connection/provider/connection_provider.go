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

package provider

import (
	"github.com/lagnam/matrimony-service/internal/connection/service"
)

// ConnectionProviderInterface defines the interface for the connection provider.
type ConnectionProviderInterface interface {
	GetConnectionService() service.ConnectionServiceInterface
}

// ConnectionProvider is the default implementation of the ConnectionProviderInterface.
type ConnectionProvider struct{}

// NewConnectionProvider creates a new instance of ConnectionProvider.
func NewConnectionProvider() ConnectionProviderInterface {

	return &ConnectionProvider{}
}

// GetConnectionService returns the connection service instance.
func (cp *ConnectionProvider) GetConnectionService() service.ConnectionServiceInterface {

	return service.GetConnectionService()
}
