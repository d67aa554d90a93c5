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
	"strings"

	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
)

// Criterion weights of the additive compatibility model. They sum to 100,
// so the earned weight is the final percentage score.
const (
	ageWeight       = 20
	religionWeight  = 20
	casteWeight     = 15
	incomeWeight    = 15
	educationWeight = 10
	heightWeight    = 10
	locationWeight  = 10
)

// Fallback bounds applied when a preference range end is unset.
const (
	defaultMinAge    = 18
	defaultMaxAge    = 50
	defaultMinHeight = 100
	defaultMaxHeight = 250
)

var incomeLevels = map[string]int{
	usermodel.IncomeNotSpecified: 0,
	"below_3lpa":                 1,
	"3_to_5lpa":                  2,
	"5_to_10lpa":                 3,
	"10_to_15lpa":                4,
	"15_to_25lpa":                5,
	"25_to_50lpa":                6,
	"above_50lpa":                7,
}

// IncomeLevel maps an income band onto the ordinal ladder used for
// preference comparison. Unknown bands rank as not specified.
func IncomeLevel(incomeRange string) int {
	return incomeLevels[incomeRange]
}

// Score computes the 0-100 compatibility score of a candidate against a
// preference set. A criterion with no preference set passes
// automatically and contributes its full weight. Pure and side-effect
// free.
func Score(candidate *usermodel.User, prefs usermodel.PartnerPreferences) int {
	score := 0

	// Age: candidates without a stated age earn nothing here.
	if candidate.BasicInfo.Age > 0 {
		minAge, maxAge := prefs.AgeRange.Min, prefs.AgeRange.Max
		if minAge == 0 {
			minAge = defaultMinAge
		}
		if maxAge == 0 {
			maxAge = defaultMaxAge
		}
		if candidate.BasicInfo.Age >= minAge && candidate.BasicInfo.Age <= maxAge {
			score += ageWeight
		}
	}

	if len(prefs.Religion) == 0 {
		score += religionWeight
	} else if containsString(prefs.Religion, candidate.CulturalInfo.Religion) {
		score += religionWeight
	}

	if len(prefs.Caste) == 0 {
		score += casteWeight
	} else if containsString(prefs.Caste, candidate.CulturalInfo.Caste) {
		score += casteWeight
	}

	if prefs.MinIncome == "" || prefs.MinIncome == usermodel.IncomeNotSpecified {
		score += incomeWeight
	} else if IncomeLevel(candidate.CareerInfo.AnnualIncome) >= IncomeLevel(prefs.MinIncome) {
		score += incomeWeight
	}

	if len(prefs.Education) == 0 {
		score += educationWeight
	} else if containsString(prefs.Education, candidate.CareerInfo.Education) {
		score += educationWeight
	}

	// Height: a candidate without a stated height passes.
	if candidate.BasicInfo.Height == 0 {
		score += heightWeight
	} else {
		minHeight, maxHeight := prefs.HeightRange.Min, prefs.HeightRange.Max
		if minHeight == 0 {
			minHeight = defaultMinHeight
		}
		if maxHeight == 0 {
			maxHeight = defaultMaxHeight
		}
		if candidate.BasicInfo.Height >= minHeight && candidate.BasicInfo.Height <= maxHeight {
			score += heightWeight
		}
	}

	if len(prefs.Locations) == 0 {
		score += locationWeight
	} else {
		location := candidate.BasicInfo.City
		if location == "" {
			location = candidate.BasicInfo.State
		}
		if location != "" {
			for _, preferred := range prefs.Locations {
				if strings.EqualFold(preferred, location) {
					score += locationWeight
					break
				}
			}
		}
	}

	return score
}

func containsString(list []string, value string) bool {
	if value == "" {
		return false
	}
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
