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

package constants

type contextKey string

const (
	// ApiBasePath is the prefix every service mounts under.
	ApiBasePath = "/api"

	// UserCollection is the MongoDB collection holding user documents.
	UserCollection = "users"

	// UserIDContextKey carries the authenticated user id on the request context.
	UserIDContextKey contextKey = "userId"

	// RoleContextKey carries the authenticated role on the request context.
	RoleContextKey contextKey = "role"

	// AdminRole is the role claim required by the admin surface.
	AdminRole = "admin"

	// DefaultUnlockCost is the coin cost of a contact unlock when the
	// deployment config does not override it.
	DefaultUnlockCost = 10

	// MaxProfilePhotos bounds the photos array on a user document.
	MaxProfilePhotos = 4
)
