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

package service

import (
	"net/http"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lagnam/matrimony-service/internal/match/model"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
	userstore "github.com/lagnam/matrimony-service/internal/user/store"
)

// CandidateStore is the slice of the user store the recommendation
// engine depends on.
type CandidateStore interface {
	FindByID(id string) (*usermodel.User, error)
	Count(filter bson.M) (int64, error)
	FindPage(filter bson.M, skip, limit int64, sort bson.D) ([]usermodel.User, error)
}

type RecommendationServiceInterface interface {
	Recommend(requesterID string, filters model.Filters, page, pageSize int) (*model.RecommendationPage, error)
}

// RecommendationService is the default implementation of
// RecommendationServiceInterface.
type RecommendationService struct {
	store CandidateStore
}

// GetRecommendationService returns a recommendation service backed by
// the Mongo user store.
func GetRecommendationService() RecommendationServiceInterface {
	return &RecommendationService{
		store: userstore.DefaultUserStore(),
	}
}

// Recommend builds the exclusion set from the requester's request
// records, queries eligible candidates, scores the fetched page and
// returns it ranked by descending score. Ranking is page-local.
func (s *RecommendationService) Recommend(requesterID string, filters model.Filters, page, pageSize int) (*model.RecommendationPage, error) {
	if page < 1 || pageSize < 1 {
		return nil, errors2.NewClientError(errors2.ErrInvalidPagination, http.StatusBadRequest)
	}

	requester, err := s.store.FindByID(requesterID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if requester == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	query := buildCandidateQuery(requester, filters)

	totalCount, err := s.store.Count(query)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileQueryingCandidates, err)
	}

	skip := int64(page-1) * int64(pageSize)
	candidates, err := s.store.FindPage(query, skip, int64(pageSize), nil)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileQueryingCandidates, err)
	}

	scored := make([]model.ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		scored = append(scored, model.ScoredCandidate{
			User:       candidates[i],
			MatchScore: Score(&candidates[i], requester.Preferences),
		})
	}
	// Stable sort keeps the store's natural order between equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize != 0 {
		totalPages++
	}

	log.GetLogger().Debug("Built recommendation page",
		log.String("requester", requesterID),
		log.Int("page", page),
		log.Int("candidates", len(scored)))

	return &model.RecommendationPage{
		Users:      scored,
		TotalCount: totalCount,
		Page:       page,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}

// buildCandidateQuery translates the requester's stored preferences and
// the caller's ad-hoc filters into the eligibility filter. Caller
// filters narrow or override the stored ones.
func buildCandidateQuery(requester *usermodel.User, filters model.Filters) bson.M {
	excludeIDs := []string{requester.ID}
	for _, req := range requester.Requests {
		excludeIDs = append(excludeIDs, req.UserID)
	}

	query := bson.M{
		"_id":               bson.M{"$nin": excludeIDs},
		"isActive":          true,
		"isProfileComplete": true,
	}

	switch requester.BasicInfo.Gender {
	case usermodel.GenderMale:
		query["basicInfo.gender"] = usermodel.GenderFemale
	case usermodel.GenderFemale:
		query["basicInfo.gender"] = usermodel.GenderMale
	}

	minAge, maxAge := requester.Preferences.AgeRange.Min, requester.Preferences.AgeRange.Max
	if minAge == 0 {
		minAge = defaultMinAge
	}
	if maxAge == 0 {
		maxAge = defaultMaxAge
	}
	query["basicInfo.age"] = bson.M{"$gte": minAge, "$lte": maxAge}

	if len(requester.Preferences.Religion) > 0 {
		query["culturalInfo.religion"] = bson.M{"$in": requester.Preferences.Religion}
	}

	if filters.Religion != "" {
		query["culturalInfo.religion"] = filters.Religion
	}
	if filters.MinAge > 0 && filters.MaxAge > 0 {
		query["basicInfo.age"] = bson.M{"$gte": filters.MinAge, "$lte": filters.MaxAge}
	}
	if filters.City != "" {
		query["basicInfo.city"] = primitive.Regex{Pattern: filters.City, Options: "i"}
	}

	return query
}
