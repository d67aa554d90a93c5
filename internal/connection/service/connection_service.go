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
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lagnam/matrimony-service/internal/connection/model"
	"github.com/lagnam/matrimony-service/internal/connection/store"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
)

// RequestStore is the slice of the connection store the workflow
// depends on.
type RequestStore interface {
	GetUser(id string) (*usermodel.User, error)
	PushRequest(ownerID string, req usermodel.ConnectionRequest) error
	SetRequestStatus(ownerID, counterpartyID, direction, status string, respondedAt time.Time) (bool, error)
	PullRequest(ownerID, counterpartyID string) error
}

type ConnectionServiceInterface interface {
	Send(requesterID string, req model.SendRequest) (*model.SendResult, error)
	Respond(ownerID string, req model.RespondRequest) (*model.RespondResult, error)
	Remove(ownerID, counterpartyID string) error
	Requests(ownerID, direction, status string) (*model.RequestList, error)
	Matches(ownerID string) (*model.MatchList, error)
	Overview(ownerID string) (*model.Overview, error)
}

// ConnectionService is the default implementation of
// ConnectionServiceInterface.
type ConnectionService struct {
	store RequestStore
}

// GetConnectionService returns a connection service backed by the Mongo
// connection store.
func GetConnectionService() ConnectionServiceInterface {
	return &ConnectionService{
		store: store.DefaultConnectionStore(),
	}
}

// Send records a pending request on both documents. The two copies
// share one creation timestamp so either side sorts identically.
func (s *ConnectionService) Send(requesterID string, req model.SendRequest) (*model.SendResult, error) {

	if req.ReceiverID == "" {
		return nil, errors2.NewClientError(errors2.ErrMissingRequiredField, http.StatusBadRequest)
	}
	if req.ReceiverID == requesterID {
		return nil, errors2.NewClientError(errors2.ErrSelfConnectionRequest, http.StatusBadRequest)
	}

	requester, err := s.store.GetUser(requesterID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if requester == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	receiver, err := s.store.GetUser(req.ReceiverID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if receiver == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}
	if !receiver.IsActive {
		return nil, errors2.NewClientError(errors2.ErrTargetInactive, http.StatusConflict)
	}

	// One record per counterparty, in any state, blocks a resend.
	if existing := requester.RequestFor(req.ReceiverID); existing != nil {
		return nil, duplicateRequestError(existing.Status)
	}

	now := time.Now()
	sent := usermodel.ConnectionRequest{
		ID:        uuid.New().String(),
		UserID:    req.ReceiverID,
		Status:    usermodel.RequestStatusPending,
		Direction: usermodel.RequestDirectionSent,
		Message:   req.Message,
		CreatedAt: now,
	}
	received := usermodel.ConnectionRequest{
		ID:        uuid.New().String(),
		UserID:    requesterID,
		Status:    usermodel.RequestStatusPending,
		Direction: usermodel.RequestDirectionReceived,
		Message:   req.Message,
		CreatedAt: now,
	}

	if err := s.store.PushRequest(requesterID, sent); err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileUpdatingConnection, err)
	}
	if err := s.store.PushRequest(req.ReceiverID, received); err != nil {
		// The sender's copy is already in place. The receiver-side
		// write can be retried; responding tolerates a missing mirror.
		log.GetLogger().Error("Failed to write receiver copy of connection request",
			log.String("requester", requesterID),
			log.String("receiver", req.ReceiverID),
			log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrWhileUpdatingConnection, err)
	}

	return &model.SendResult{
		ReceiverID: req.ReceiverID,
		Status:     usermodel.RequestStatusPending,
	}, nil
}

// Respond resolves a pending received request. The requester's mirror
// copy is updated best-effort: a missing mirror does not fail the call.
func (s *ConnectionService) Respond(ownerID string, req model.RespondRequest) (*model.RespondResult, error) {

	var status string
	switch req.Action {
	case model.ActionAccept:
		status = usermodel.RequestStatusAccepted
	case model.ActionReject:
		status = usermodel.RequestStatusRejected
	default:
		return nil, errors2.NewClientError(errors2.ErrInvalidConnectionAction, http.StatusBadRequest)
	}

	owner, err := s.store.GetUser(ownerID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if owner == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	record := owner.RequestFor(req.RequesterID)
	if record == nil || record.Direction != usermodel.RequestDirectionReceived {
		return nil, errors2.NewClientError(errors2.ErrConnectionRequestNotFound, http.StatusNotFound)
	}
	if record.Status != usermodel.RequestStatusPending {
		return nil, errors2.NewClientError(errors2.ErrConnectionRequestResolved, http.StatusConflict)
	}

	now := time.Now()
	matched, err := s.store.SetRequestStatus(ownerID, req.RequesterID,
		usermodel.RequestDirectionReceived, status, now)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileUpdatingConnection, err)
	}
	if !matched {
		return nil, errors2.NewClientError(errors2.ErrConnectionRequestNotFound, http.StatusNotFound)
	}

	mirrored, err := s.store.SetRequestStatus(req.RequesterID, ownerID,
		usermodel.RequestDirectionSent, status, now)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileUpdatingConnection, err)
	}
	if !mirrored {
		log.GetLogger().Warn("Requester copy of connection request missing on respond",
			log.String("owner", ownerID),
			log.String("requester", req.RequesterID))
	}

	return &model.RespondResult{
		RequesterID: req.RequesterID,
		Status:      status,
	}, nil
}

// Remove deletes both copies of the connection between two users.
func (s *ConnectionService) Remove(ownerID, counterpartyID string) error {

	owner, err := s.store.GetUser(ownerID)
	if err != nil {
		return errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if owner == nil {
		return errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}
	if owner.RequestFor(counterpartyID) == nil {
		return errors2.NewClientError(errors2.ErrConnectionRequestNotFound, http.StatusNotFound)
	}

	if err := s.store.PullRequest(ownerID, counterpartyID); err != nil {
		return errors2.NewServerError(errors2.ErrWhileUpdatingConnection, err)
	}
	if err := s.store.PullRequest(counterpartyID, ownerID); err != nil {
		return errors2.NewServerError(errors2.ErrWhileUpdatingConnection, err)
	}
	return nil
}

// Requests returns the owner's request records, newest first, filtered
// by direction ("sent"/"received") and status when given.
func (s *ConnectionService) Requests(ownerID, direction, status string) (*model.RequestList, error) {

	owner, err := s.store.GetUser(ownerID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if owner == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	counts := model.RequestCounts{Total: len(owner.Requests)}
	for _, record := range owner.Requests {
		switch record.Status {
		case usermodel.RequestStatusPending:
			counts.Pending++
		case usermodel.RequestStatusAccepted:
			counts.Accepted++
		case usermodel.RequestStatusRejected:
			counts.Rejected++
		}
	}

	views := make([]model.RequestView, 0, len(owner.Requests))
	for _, record := range owner.Requests {
		if direction != "" && record.Direction != direction {
			continue
		}
		if status != "" && record.Status != status {
			continue
		}
		views = append(views, model.RequestView{
			ConnectionRequest: record,
			User:              s.counterparty(record.UserID),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})

	return &model.RequestList{Requests: views, Counts: counts}, nil
}

// Matches returns the accepted connections of the owner.
func (s *ConnectionService) Matches(ownerID string) (*model.MatchList, error) {

	owner, err := s.store.GetUser(ownerID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if owner == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	matches := s.acceptedMatches(owner)
	return &model.MatchList{Matches: matches, TotalMatches: len(matches)}, nil
}

// Overview merges pending received requests and accepted matches into
// one payload for the connections tab.
func (s *ConnectionService) Overview(ownerID string) (*model.Overview, error) {

	owner, err := s.store.GetUser(ownerID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileFetchingUser, err)
	}
	if owner == nil {
		return nil, errors2.NewClientError(errors2.ErrUserNotFound, http.StatusNotFound)
	}

	pending := make([]model.PendingRequest, 0)
	for _, record := range owner.Requests {
		if record.Direction != usermodel.RequestDirectionReceived ||
			record.Status != usermodel.RequestStatusPending {
			continue
		}
		pending = append(pending, model.PendingRequest{
			ID:        record.ID,
			User:      s.counterparty(record.UserID),
			Message:   record.Message,
			CreatedAt: record.CreatedAt,
		})
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt.After(pending[j].CreatedAt)
	})

	accepted := s.acceptedMatches(owner)

	return &model.Overview{
		Pending:  pending,
		Accepted: accepted,
		Counts: model.OverviewCounts{
			Pending:  len(pending),
			Accepted: len(accepted),
		},
	}, nil
}

func (s *ConnectionService) acceptedMatches(owner *usermodel.User) []model.Match {
	matches := make([]model.Match, 0)
	for _, record := range owner.Requests {
		if record.Status != usermodel.RequestStatusAccepted {
			continue
		}
		connectedAt := record.CreatedAt
		if record.RespondedAt != nil {
			connectedAt = *record.RespondedAt
		}
		initiatedBy := "them"
		if record.Direction == usermodel.RequestDirectionSent {
			initiatedBy = "me"
		}
		matches = append(matches, model.Match{
			User:        s.counterparty(record.UserID),
			ConnectedAt: connectedAt,
			InitiatedBy: initiatedBy,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ConnectedAt.After(matches[j].ConnectedAt)
	})
	return matches
}

// duplicateRequestError reports the state of the record that blocks a
// resend.
func duplicateRequestError(status string) error {
	msg := errors2.ErrDuplicateConnectionRequest
	msg.Description = fmt.Sprintf("existing request status is %s", status)
	return errors2.NewClientError(msg, http.StatusConflict)
}

// counterparty resolves the profile card for a request record. Deleted
// counterparties resolve to nil rather than failing the whole listing.
func (s *ConnectionService) counterparty(userID string) *model.CounterpartyProfile {
	user, err := s.store.GetUser(userID)
	if err != nil || user == nil {
		return nil
	}
	return &model.CounterpartyProfile{
		ID:           user.ID,
		BasicInfo:    user.BasicInfo,
		CulturalInfo: user.CulturalInfo,
		CareerInfo:   user.CareerInfo,
		ProfilePhoto: user.ProfilePhoto,
		LastActive:   user.LastActive,
	}
}
