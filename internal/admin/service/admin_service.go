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
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lagnam/matrimony-service/internal/admin/model"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	"github.com/lagnam/matrimony-service/internal/system/pagination"
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
	userstore "github.com/lagnam/matrimony-service/internal/user/store"
	walletmodel "github.com/lagnam/matrimony-service/internal/wallet/model"
	walletservice "github.com/lagnam/matrimony-service/internal/wallet/service"
)

// AdminStore is the slice of the user store the admin surface depends on.
type AdminStore interface {
	Count(filter bson.M) (int64, error)
	FindPage(filter bson.M, skip, limit int64, sort bson.D) ([]usermodel.User, error)
	UpdateFields(id string, fields bson.M) (bool, error)
	Delete(id string) (bool, error)
	PullRequestsReferencing(id string) error
}

type AdminServiceInterface interface {
	ListUsers(page, pageSize int, search, status string) (*model.UserPage, error)
	Stats() (*model.Stats, error)
	SetActive(userID string, active bool) error
	SetVerified(userID string, verified bool) error
	DeleteUser(userID string) error
	GrantCoins(userID string, req model.GrantCoinsRequest) (*walletmodel.CreditResult, error)
}

// AdminService is the default implementation of AdminServiceInterface.
type AdminService struct {
	store  AdminStore
	wallet walletservice.WalletServiceInterface
}

// GetAdminService returns an admin service backed by the Mongo user
// store and the wallet service.
func GetAdminService() AdminServiceInterface {
	return &AdminService{
		store:  userstore.DefaultUserStore(),
		wallet: walletservice.GetWalletService(),
	}
}

// ListUsers pages through all accounts, optionally matching a name or
// email search term and an account status.
func (s *AdminService) ListUsers(page, pageSize int, search, status string) (*model.UserPage, error) {

	if page < 1 || pageSize < 1 {
		return nil, errors2.NewClientError(errors2.ErrInvalidPagination, http.StatusBadRequest)
	}

	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = []bson.M{
			{"basicInfo.name": pattern},
			{"email": pattern},
		}
	}
	switch status {
	case "active":
		filter["isActive"] = true
	case "inactive":
		filter["isActive"] = false
	case "verified":
		filter["isVerified"] = true
	case "incomplete":
		filter["isProfileComplete"] = false
	}

	totalCount, err := s.store.Count(filter)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}

	skip := int64(page-1) * int64(pageSize)
	users, err := s.store.FindPage(filter, skip, int64(pageSize), bson.D{{Key: "createdAt", Value: -1}})
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}

	return &model.UserPage{
		Users:      users,
		TotalCount: totalCount,
		Page:       page,
		TotalPages: pagination.TotalPages(totalCount, pageSize),
	}, nil
}

// Stats gathers the dashboard counters.
func (s *AdminService) Stats() (*model.Stats, error) {

	stats := &model.Stats{}
	counters := []struct {
		filter bson.M
		dest   *int64
	}{
		{bson.M{}, &stats.TotalUsers},
		{bson.M{"isActive": true}, &stats.ActiveUsers},
		{bson.M{"isVerified": true}, &stats.VerifiedUsers},
		{bson.M{"isProfileComplete": true}, &stats.CompleteProfiles},
		{bson.M{"basicInfo.gender": usermodel.GenderMale}, &stats.MaleUsers},
		{bson.M{"basicInfo.gender": usermodel.GenderFemale}, &stats.FemaleUsers},
	}
	for _, counter := range counters {
		count, err := s.store.Count(counter.filter)
		if err != nil {
			return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
		}
		*counter.dest = count
	}
	return stats, nil
}

// SetActive bans or reinstates an account. Banned accounts disappear
// from recommendations and public profile lookups.
func (s *AdminService) SetActive(userID string, active bool) error {
	return s.setFlag(userID, "isActive", active)
}

// SetVerified toggles the manual verification badge.
func (s *AdminService) SetVerified(userID string, verified bool) error {
	return s.setFlag(userID, "isVerified", verified)
}

func (s *AdminService) setFlag(userID, field string, value bool) error {

	matched, err := s.store.UpdateFields(userID, bson.M{field: value})
	if err != nil {
		return errors2.NewServerError(errors2.ErrWhileUpdatingUser, err)
	}
	if !matched {
		return errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	log.GetLogger().Info("Moderation flag updated",
		log.String("userId", userID),
		log.String("flag", field),
		log.Bool("value", value))
	return nil
}

// DeleteUser removes an account and scrubs the request records it left
// in other documents.
func (s *AdminService) DeleteUser(userID string) error {

	deleted, err := s.store.Delete(userID)
	if err != nil {
		return errors2.NewServerError(errors2.ErrWhileDeletingUser, err)
	}
	if !deleted {
		return errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	if err := s.store.PullRequestsReferencing(userID); err != nil {
		log.GetLogger().Error("Failed to scrub request references of deleted user",
			log.String("userId", userID), log.Error(err))
	}
	return nil
}

// GrantCoins credits a user's wallet on behalf of an operator.
func (s *AdminService) GrantCoins(userID string, req model.GrantCoinsRequest) (*walletmodel.CreditResult, error) {

	description := req.Description
	if description == "" {
		description = "Coins granted by admin"
	}
	return s.wallet.Credit(userID, walletmodel.CreditRequest{
		Amount:      req.Amount,
		Description: description,
	})
}
