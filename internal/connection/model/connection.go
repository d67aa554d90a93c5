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
	"time"

	usermodel "github.com/lagnam/matrimony-service/internal/user/model"
)

const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// SendRequest is the payload for sending a new connection request.
type SendRequest struct {
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

// SendResult reports the outcome of a send operation.
type SendResult struct {
	ReceiverID string `json:"receiverId"`
	Status     string `json:"status"`
}

// RespondRequest is the payload for accepting or rejecting a request.
type RespondRequest struct {
	RequesterID string `json:"requesterId"`
	Action      string `json:"action"`
}

// RespondResult reports the resolved status of both record copies.
type RespondResult struct {
	RequesterID string `json:"requesterId"`
	Status      string `json:"status"`
}

// CounterpartyProfile carries the subset of a user shown on the
// connection screens.
type CounterpartyProfile struct {
	ID           string                 `json:"id"`
	BasicInfo    usermodel.BasicInfo    `json:"basicInfo"`
	CulturalInfo usermodel.CulturalInfo `json:"culturalInfo"`
	CareerInfo   usermodel.CareerInfo   `json:"careerInfo"`
	ProfilePhoto string                 `json:"profilePhoto,omitempty"`
	LastActive   time.Time              `json:"lastActive"`
}

// RequestView is a request record with the counterparty resolved.
type RequestView struct {
	usermodel.ConnectionRequest
	User *CounterpartyProfile `json:"user,omitempty"`
}

// RequestCounts summarizes the owner's full request list by status.
type RequestCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// RequestList is the filtered, newest-first view over the owner's
// request records.
type RequestList struct {
	Requests []RequestView `json:"requests"`
	Counts   RequestCounts `json:"counts"`
}

// Match is an accepted connection. InitiatedBy is "me" when the owner's
// record copy has the sent direction, "them" otherwise.
type Match struct {
	User        *CounterpartyProfile `json:"user"`
	ConnectedAt time.Time            `json:"connectedAt"`
	InitiatedBy string               `json:"initiatedBy"`
}

// MatchList is the accepted-connections view.
type MatchList struct {
	Matches      []Match `json:"matches"`
	TotalMatches int     `json:"totalMatches"`
}

// PendingRequest is an actionable received request in the combined view.
type PendingRequest struct {
	ID        string               `json:"id"`
	User      *CounterpartyProfile `json:"user"`
	Message   string               `json:"message,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

// OverviewCounts sizes the two halves of the combined view.
type OverviewCounts struct {
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
}

// Overview merges pending received requests and accepted matches for the
// connections tab.
type Overview struct {
	Pending  []PendingRequest `json:"pending"`
	Accepted []Match          `json:"accepted"`
	Counts   OverviewCounts   `json:"counts"`
}
