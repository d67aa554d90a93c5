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
	"github.com/lagnam/matrimony-service/internal/match/service"
)

// MatchProviderInterface defines the interface for the match provider.
type MatchProviderInterface interface {
	GetRecommendationService() service.RecommendationServiceInterface
}

// MatchProvider is the default implementation of the MatchProviderInterface.
type MatchProvider struct{}

// NewMatchProvider creates a new instance of MatchProvider.
func NewMatchProvider() MatchProviderInterface {

	return &MatchProvider{}
}

// GetRecommendationService returns the recommendation service instance.
func (mp *MatchProvider) GetRecommendationService() service.RecommendationServiceInterface {

	return service.GetRecommendationService()
}
