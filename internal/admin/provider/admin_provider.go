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
	"github.com/lagnam/matrimony-service/internal/admin/service"
)

// AdminProviderInterface defines the interface for the admin provider.
type AdminProviderInterface interface {
	GetAdminService() service.AdminServiceInterface
}

// AdminProvider is the default implementation of the AdminProviderInterface.
type AdminProvider struct{}

// NewAdminProvider creates a new instance of AdminProvider.
func NewAdminProvider() AdminProviderInterface {

	return &AdminProvider{}
}

// GetAdminService returns the admin service instance.
func (ap *AdminProvider) GetAdminService() service.AdminServiceInterface {

	return service.GetAdminService()
}
