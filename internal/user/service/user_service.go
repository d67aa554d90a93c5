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

	"go.mongodb.org/mongo-driver/bson"

	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	"github.com/lagnam/matrimony-service/internal/user/model"
	"github.com/lagnam/matrimony-service/internal/user/store"
)

// ProfileStore is the slice of the user store the profile service
// depends on.
type ProfileStore interface {
	FindByID(id string) (*model.User, error)
	FindPublicByID(id string) (*model.User, error)
	UpdateFields(id string, fields bson.M) (bool, error)
	Delete(id string) (bool, error)
	PullRequestsReferencing(id string) error
}

type UserServiceInterface interface {
	GetOwnProfile(userID string) (*model.User, error)
	GetPublicProfile(targetID string) (*model.User, error)
	UpdateProfile(userID string, update model.ProfileUpdate) (*model.User, error)
	UpdateOnboardingStep(userID string, step int, payload model.OnboardingStep) (*model.OnboardingResult, error)
	DeleteAccount(userID string) error
}

// UserService is the default implementation of UserServiceInterface.
type UserService struct {
	store ProfileStore
}

// GetUserService returns a user service backed by the Mongo user store.
func GetUserService() UserServiceInterface {
	return &UserService{
		store: store.DefaultUserStore(),
	}
}

func (s *UserService) GetOwnProfile(userID string) (*model.User, error) {

	user, err := s.store.FindByID(userID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if user == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}
	return user, nil
}

// GetPublicProfile returns the outward-facing view of a profile.
// Deactivated profiles are indistinguishable from absent ones.
func (s *UserService) GetPublicProfile(targetID string) (*model.User, error) {

	user, err := s.store.FindPublicByID(targetID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if user == nil || !user.IsActive {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}
	return user, nil
}

// UpdateProfile applies a partial edit, revalidates the affected
// sections and recomputes the completion flag from the merged profile.
func (s *UserService) UpdateProfile(userID string, update model.ProfileUpdate) (*model.User, error) {

	user, err := s.store.FindByID(userID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if user == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	fields := bson.M{}
	if update.BasicInfo != nil {
		if err := validateBasicInfo(update.BasicInfo); err != nil {
			return nil, err
		}
		user.BasicInfo = *update.BasicInfo
		fields["basicInfo"] = user.BasicInfo
	}
	if update.CulturalInfo != nil {
		user.CulturalInfo = *update.CulturalInfo
		fields["culturalInfo"] = user.CulturalInfo
	}
	if update.CareerInfo != nil {
		if err := validateCareerInfo(update.CareerInfo); err != nil {
			return nil, err
		}
		user.CareerInfo = *update.CareerInfo
		fields["careerInfo"] = user.CareerInfo
	}
	if update.FamilyInfo != nil {
		user.FamilyInfo = *update.FamilyInfo
		fields["familyInfo"] = user.FamilyInfo
	}
	if update.Preferences != nil {
		if err := validatePreferences(update.Preferences); err != nil {
			return nil, err
		}
		user.Preferences = *update.Preferences
		fields["partnerPreferences"] = user.Preferences
	}
	if update.About != nil {
		user.About = *update.About
		fields["about"] = user.About
	}
	if update.ProfilePhoto != nil {
		user.ProfilePhoto = *update.ProfilePhoto
		fields["profilePhoto"] = user.ProfilePhoto
	}
	if update.Photos != nil {
		if err := validatePhotos(update.Photos); err != nil {
			return nil, err
		}
		user.Photos = update.Photos
		fields["photos"] = user.Photos
	}
	if update.Privacy != nil {
		user.Privacy = *update.Privacy
		fields["privacySettings"] = user.Privacy
	}

	if len(fields) == 0 {
		return user, nil
	}

	// A profile that once satisfied the completion predicate can fall
	// back to incomplete if a later edit clears a required field.
	user.IsProfileComplete = IsProfileComplete(user)
	fields["isProfileComplete"] = user.IsProfileComplete

	matched, err := s.store.UpdateFields(userID, fields)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileUpdatingUser, err)
	}
	if !matched {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	return user, nil
}

// UpdateOnboardingStep writes one guided-setup section. Completing the
// final step marks the profile complete regardless of the predicate,
// matching the product's "review later" flow.
func (s *UserService) UpdateOnboardingStep(userID string, step int, payload model.OnboardingStep) (*model.OnboardingResult, error) {

	if step < 1 || step > 5 {
		return nil, errors2.NewClientError(errors2.ErrInvalidOnboardingStep, http.StatusBadRequest)
	}

	user, err := s.store.FindByID(userID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if user == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	fields := bson.M{}
	switch step {
	case 1:
		if payload.BasicInfo == nil {
			return nil, errors2.NewClientError(errors2.ErrMissingRequiredField, http.StatusBadRequest)
		}
		if err := validateBasicInfo(payload.BasicInfo); err != nil {
			return nil, err
		}
		user.BasicInfo = *payload.BasicInfo
		fields["basicInfo"] = user.BasicInfo
	case 2:
		if payload.CulturalInfo == nil {
			return nil, errors2.NewClientError(errors2.ErrMissingRequiredField, http.StatusBadRequest)
		}
		user.CulturalInfo = *payload.CulturalInfo
		fields["culturalInfo"] = user.CulturalInfo
	case 3:
		if payload.CareerInfo == nil {
			return nil, errors2.NewClientError(errors2.ErrMissingRequiredField, http.StatusBadRequest)
		}
		if err := validateCareerInfo(payload.CareerInfo); err != nil {
			return nil, err
		}
		user.CareerInfo = *payload.CareerInfo
		fields["careerInfo"] = user.CareerInfo
	case 4:
		if payload.FamilyInfo == nil {
			return nil, errors2.NewClientError(errors2.ErrMissingRequiredField, http.StatusBadRequest)
		}
		user.FamilyInfo = *payload.FamilyInfo
		fields["familyInfo"] = user.FamilyInfo
	case 5:
		if payload.Preferences == nil {
			return nil, errors2.NewClientError(errors2.ErrMissingRequiredField, http.StatusBadRequest)
		}
		if err := validatePreferences(payload.Preferences); err != nil {
			return nil, err
		}
		user.Preferences = *payload.Preferences
		fields["partnerPreferences"] = user.Preferences
	}

	if step == 5 {
		user.IsProfileComplete = true
	} else {
		user.IsProfileComplete = IsProfileComplete(user)
	}
	fields["isProfileComplete"] = user.IsProfileComplete

	matched, err := s.store.UpdateFields(userID, fields)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileUpdatingUser, err)
	}
	if !matched {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	return &model.OnboardingResult{
		Step:              step,
		IsProfileComplete: user.IsProfileComplete,
		User:              user,
	}, nil
}

// DeleteAccount removes the user document and scrubs the dangling
// request entries it left in other documents.
func (s *UserService) DeleteAccount(userID string) error {

	deleted, err := s.store.Delete(userID)
	if err != nil {
		return errors2.NewServerError(errors2.ErrWhileDeletingUser, err)
	}
	if !deleted {
		return errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	if err := s.store.PullRequestsReferencing(userID); err != nil {
		// The account itself is gone. Log the failed cleanup rather
		// than surfacing an error for an already-deleted user.
		log.GetLogger().Error("Failed to scrub request references of deleted user",
			log.String("userId", userID), log.Error(err))
	}
	return nil
}
