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

// ProfileUpdate carries a partial profile edit. Only the sections that
// are present get written.
type ProfileUpdate struct {
	BasicInfo    *BasicInfo          `json:"basicInfo,omitempty"`
	CulturalInfo *CulturalInfo       `json:"culturalInfo,omitempty"`
	CareerInfo   *CareerInfo         `json:"careerInfo,omitempty"`
	FamilyInfo   *FamilyInfo         `json:"familyInfo,omitempty"`
	Preferences  *PartnerPreferences `json:"partnerPreferences,omitempty"`
	About        *string             `json:"about,omitempty"`
	ProfilePhoto *string             `json:"profilePhoto,omitempty"`
	Photos       []string            `json:"photos,omitempty"`
	Privacy      *PrivacySettings    `json:"privacySettings,omitempty"`
}

// OnboardingStep identifies the guided profile-setup section being
// submitted. Steps run 1 through 5: basic, cultural, career, family
// and partner preferences.
type OnboardingStep struct {
	BasicInfo    *BasicInfo          `json:"basicInfo,omitempty"`
	CulturalInfo *CulturalInfo       `json:"culturalInfo,omitempty"`
	CareerInfo   *CareerInfo         `json:"careerInfo,omitempty"`
	FamilyInfo   *FamilyInfo         `json:"familyInfo,omitempty"`
	Preferences  *PartnerPreferences `json:"partnerPreferences,omitempty"`
}

// OnboardingResult reports the state of the profile after a step write.
type OnboardingResult struct {
	Step              int   `json:"step"`
	IsProfileComplete bool  `json:"isProfileComplete"`
	User              *User `json:"user"`
}
