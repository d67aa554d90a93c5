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
	"strconv"

	"github.com/lagnam/matrimony-service/internal/match/model"
	"github.com/lagnam/matrimony-service/internal/match/provider"
	"github.com/lagnam/matrimony-service/internal/system/authn"
	"github.com/lagnam/matrimony-service/internal/system/pagination"
	"github.com/lagnam/matrimony-service/internal/system/utils"
)

type MatchHandler struct{}

func NewMatchHandler() *MatchHandler {
	return &MatchHandler{}
}

// GetRecommendations serves the ranked candidate feed for the
// authenticated user.
func (mh *MatchHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {

	userID := authn.UserIDFromRequest(r)

	page, err := pagination.ParsePage(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	limit, err := pagination.ParseLimit(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	filters := model.Filters{
		Religion: r.URL.Query().Get("religion"),
		City:     r.URL.Query().Get("city"),
	}
	if v := r.URL.Query().Get("minAge"); v != "" {
		filters.MinAge, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("maxAge"); v != "" {
		filters.MaxAge, _ = strconv.Atoi(v)
	}

	recommendationService := provider.NewMatchProvider().GetRecommendationService()
	result, err := recommendationService.Recommend(userID, filters, page, limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
