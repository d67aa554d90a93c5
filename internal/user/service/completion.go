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
	"fmt"
	"net/http"

	"github.com/lagnam/matrimony-service/internal/system/config"
	"github.com/lagnam/matrimony-service/internal/system/constants"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/user/model"
)

// IsProfileComplete reports whether a profile carries enough data to
// enter the recommendation pool: identity basics, a religion, and at
// least one of education or profession.
func IsProfileComplete(u *model.User) bool {
	hasBasics := u.BasicInfo.Name != "" &&
		u.BasicInfo.Age > 0 &&
		u.BasicInfo.Gender != ""
	hasReligion := u.CulturalInfo.Religion != ""
	hasCareer := u.CareerInfo.Education != "" || u.CareerInfo.Profession != ""

	return hasBasics && hasReligion && hasCareer
}

func validationError(description string) error {
	msg := errors2.ErrValidationFailed
	msg.Description = description
	return errors2.NewClientError(msg, http.StatusBadRequest)
}

func validateBasicInfo(info *model.BasicInfo) error {
	switch info.Gender {
	case "", model.GenderMale, model.GenderFemale, model.GenderOther:
	default:
		return validationError("gender must be one of male, female or other")
	}

	cfg := config.GetConfig()
	if info.Age != 0 && (info.Age < cfg.App.MinAge || info.Age > cfg.App.MaxAge) {
		return validationError(fmt.Sprintf("age must be between %d and %d", cfg.App.MinAge, cfg.App.MaxAge))
	}
	if info.Height != 0 && (info.Height < minHeightCm || info.Height > maxHeightCm) {
		return validationError(fmt.Sprintf("height must be between %d and %d cm", minHeightCm, maxHeightCm))
	}
	if info.Weight != 0 && (info.Weight < minWeightKg || info.Weight > maxWeightKg) {
		return validationError(fmt.Sprintf("weight must be between %d and %d kg", minWeightKg, maxWeightKg))
	}
	return nil
}

// Physical bounds on a stored profile.
const (
	minHeightCm = 100
	maxHeightCm = 250
	minWeightKg = 30
	maxWeightKg = 200
)

func validateCareerInfo(info *model.CareerInfo) error {
	if info.AnnualIncome != "" {
		if _, ok := incomeBands[info.AnnualIncome]; !ok {
			return validationError("unrecognized annual income band: " + info.AnnualIncome)
		}
	}
	return nil
}

func validatePreferences(prefs *model.PartnerPreferences) error {
	if prefs.AgeRange.Min != 0 && prefs.AgeRange.Max != 0 && prefs.AgeRange.Min > prefs.AgeRange.Max {
		return validationError("preference age range is inverted")
	}
	if prefs.HeightRange.Min != 0 && prefs.HeightRange.Max != 0 && prefs.HeightRange.Min > prefs.HeightRange.Max {
		return validationError("preference height range is inverted")
	}
	if prefs.MinIncome != "" {
		if _, ok := incomeBands[prefs.MinIncome]; !ok {
			return validationError("unrecognized minimum income band: " + prefs.MinIncome)
		}
	}
	return nil
}

func validatePhotos(photos []string) error {
	if len(photos) > constants.MaxProfilePhotos {
		return validationError(fmt.Sprintf("at most %d photos are allowed", constants.MaxProfilePhotos))
	}
	return nil
}

// incomeBands mirrors the ladder used for scoring.
var incomeBands = map[string]struct{}{
	model.IncomeNotSpecified: {},
	"below_3lpa":             {},
	"3_to_5lpa":              {},
	"5_to_10lpa":             {},
	"10_to_15lpa":            {},
	"15_to_25lpa":            {},
	"25_to_50lpa":            {},
	"above_50lpa":            {},
}
