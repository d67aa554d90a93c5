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

// Filters narrows the recommendation query beyond the requester's stored
// preferences. Zero values mean "not set". MinAge and MaxAge only apply
// when both are set.
type Filters struct {
	Religion string
	MinAge   int
	MaxAge   int
	City     string
}

// ScoredCandidate is a candidate user annotated with their
// compatibility score against the requester's preferences.
type ScoredCandidate struct {
	usermodel.User
	MatchScore int `json:"matchScore"`
}

// RecommendationPage is one ranked page of candidates. Ranking is
// page-local: scores order candidates within the fetched page only.
type RecommendationPage struct {
	Users      []ScoredCandidate `json:"users"`
	TotalCount int64             `json:"totalCount"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	HasMore    bool              `json:"hasMore"`
}
