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

package model

import (
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
)

// UserPage is one page of the administrative user listing.
type UserPage struct {
	Users      []usermodel.User `json:"users"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// Stats is the platform-wide dashboard summary.
type Stats struct {
	TotalUsers       int64 `json:"totalUsers"`
	ActiveUsers      int64 `json:"activeUsers"`
	VerifiedUsers    int64 `json:"verifiedUsers"`
	CompleteProfiles int64 `json:"completeProfiles"`
	MaleUsers        int64 `json:"maleUsers"`
	FemaleUsers      int64 `json:"femaleUsers"`
}

// ModerationRequest toggles a moderation flag on a user.
type ModerationRequest struct {
	Value bool `json:"value"`
}

// GrantCoinsRequest credits a user's wallet on behalf of an operator.
type GrantCoinsRequest struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}
