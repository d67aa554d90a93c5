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

import "time"

// Gender values accepted on a user document. The empty string means the
// user has not disclosed a gender yet.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Connection request lifecycle values. Direction is relative to the
// document that embeds the record.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"

	RequestDirectionSent     = "sent"
	RequestDirectionReceived = "received"
)

// Wallet transaction types. Transactions are append-only.
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// IncomeNotSpecified is the zero value of the ordinal income ladder.
const IncomeNotSpecified = "not_specified"

// Roles carried in the access token.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the root user document: one registered individual's profile,
// preferences, connection requests and wallet.
type User struct {
	ID                string              `bson:"_id" json:"id"`
	Email             string              `bson:"email" json:"email"`
	Password          string              `bson:"password" json:"-"`
	Phone             string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Role              string              `bson:"role" json:"role"`
	IsProfileComplete bool                `bson:"isProfileComplete" json:"isProfileComplete"`
	ProfilePhoto      string              `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	Photos            []string            `bson:"photos,omitempty" json:"photos,omitempty"`
	BasicInfo         BasicInfo           `bson:"basicInfo" json:"basicInfo"`
	CulturalInfo      CulturalInfo        `bson:"culturalInfo" json:"culturalInfo"`
	CareerInfo        CareerInfo          `bson:"careerInfo" json:"careerInfo"`
	FamilyInfo        FamilyInfo          `bson:"familyInfo" json:"familyInfo"`
	Preferences       PartnerPreferences  `bson:"partnerPreferences" json:"partnerPreferences"`
	Requests          []ConnectionRequest `bson:"connectionRequests" json:"connectionRequests,omitempty"`
	About             string              `bson:"about,omitempty" json:"about,omitempty"`
	IsActive          bool                `bson:"isActive" json:"isActive"`
	IsVerified        bool                `bson:"isVerified" json:"isVerified"`
	Privacy           PrivacySettings     `bson:"privacySettings" json:"privacySettings"`
	Wallet            Wallet              `bson:"wallet" json:"wallet,omitempty"`
	LastActive        time.Time           `bson:"lastActive" json:"lastActive"`
	CreatedAt         time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// BasicInfo holds core personal details. Numeric fields use zero for
// "not provided".
type BasicInfo struct {
	Name          string     `bson:"name,omitempty" json:"name,omitempty"`
	Age           int        `bson:"age,omitempty" json:"age,omitempty"`
	Gender        string     `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth   *time.Time `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Height        int        `bson:"height,omitempty" json:"height,omitempty"`
	Weight        int        `bson:"weight,omitempty" json:"weight,omitempty"`
	MaritalStatus string     `bson:"maritalStatus,omitempty" json:"maritalStatus,omitempty"`
	City          string     `bson:"city,omitempty" json:"city,omitempty"`
	State         string     `bson:"state,omitempty" json:"state,omitempty"`
	Country       string     `bson:"country,omitempty" json:"country,omitempty"`
}

type Horoscope struct {
	Rashi     string `bson:"rashi,omitempty" json:"rashi,omitempty"`
	Nakshatra string `bson:"nakshatra,omitempty" json:"nakshatra,omitempty"`
	Manglik   string `bson:"manglik,omitempty" json:"manglik,omitempty"`
}

type CulturalInfo struct {
	Religion     string    `bson:"religion,omitempty" json:"religion,omitempty"`
	Caste        string    `bson:"caste,omitempty" json:"caste,omitempty"`
	SubCaste     string    `bson:"subCaste,omitempty" json:"subCaste,omitempty"`
	MotherTongue string    `bson:"motherTongue,omitempty" json:"motherTongue,omitempty"`
	Horoscope    Horoscope `bson:"horoscope,omitempty" json:"horoscope,omitempty"`
	Gothra       string    `bson:"gothra,omitempty" json:"gothra,omitempty"`
}

type CareerInfo struct {
	Education       string `bson:"education,omitempty" json:"education,omitempty"`
	EducationDetail string `bson:"educationDetail,omitempty" json:"educationDetail,omitempty"`
	College         string `bson:"college,omitempty" json:"college,omitempty"`
	Profession      string `bson:"profession,omitempty" json:"profession,omitempty"`
	Company         string `bson:"company,omitempty" json:"company,omitempty"`
	AnnualIncome    string `bson:"annualIncome,omitempty" json:"annualIncome,omitempty"`
	WorkLocation    string `bson:"workLocation,omitempty" json:"workLocation,omitempty"`
}

type Siblings struct {
	Brothers        int `bson:"brothers" json:"brothers"`
	Sisters         int `bson:"sisters" json:"sisters"`
	MarriedBrothers int `bson:"marriedBrothers" json:"marriedBrothers"`
	MarriedSisters  int `bson:"marriedSisters" json:"marriedSisters"`
}

type FamilyInfo struct {
	FatherName       string   `bson:"fatherName,omitempty" json:"fatherName,omitempty"`
	FatherOccupation string   `bson:"fatherOccupation,omitempty" json:"fatherOccupation,omitempty"`
	MotherName       string   `bson:"motherName,omitempty" json:"motherName,omitempty"`
	MotherOccupation string   `bson:"motherOccupation,omitempty" json:"motherOccupation,omitempty"`
	Siblings         Siblings `bson:"siblings,omitempty" json:"siblings,omitempty"`
	FamilyType       string   `bson:"familyType,omitempty" json:"familyType,omitempty"`
	FamilyStatus     string   `bson:"familyStatus,omitempty" json:"familyStatus,omitempty"`
	FamilyValues     string   `bson:"familyValues,omitempty" json:"familyValues,omitempty"`
}

// AgeRange bounds a preference. Both ends are inclusive.
type AgeRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

// HeightRange bounds a preference in centimeters. Both ends are inclusive.
type HeightRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

// PartnerPreferences drive candidate filtering and scoring. Empty lists
// mean "no preference".
type PartnerPreferences struct {
	AgeRange          AgeRange    `bson:"ageRange" json:"ageRange"`
	HeightRange       HeightRange `bson:"heightRange" json:"heightRange"`
	MaritalStatus     []string    `bson:"maritalStatus,omitempty" json:"maritalStatus,omitempty"`
	Religion          []string    `bson:"religion,omitempty" json:"religion,omitempty"`
	Caste             []string    `bson:"caste,omitempty" json:"caste,omitempty"`
	MotherTongue      []string    `bson:"motherTongue,omitempty" json:"motherTongue,omitempty"`
	Education         []string    `bson:"education,omitempty" json:"education,omitempty"`
	Profession        []string    `bson:"profession,omitempty" json:"profession,omitempty"`
	MinIncome         string      `bson:"minIncome,omitempty" json:"minIncome,omitempty"`
	Locations         []string    `bson:"locations,omitempty" json:"locations,omitempty"`
	ManglikPreference string      `bson:"manglikPreference,omitempty" json:"manglikPreference,omitempty"`
}

// ConnectionRequest is one side of a mirrored request pair. UserID and
// Direction are relative to the document that embeds the record; the
// counterparty's document holds the paired copy with the opposite
// direction and, after every transition, an equal status.
type ConnectionRequest struct {
	ID          string     `bson:"id" json:"id"`
	UserID      string     `bson:"userId" json:"userId"`
	Status      string     `bson:"status" json:"status"`
	Direction   string     `bson:"type" json:"type"`
	Message     string     `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	RespondedAt *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}

// Transaction is an append-only wallet ledger entry. Never mutated or
// deleted after creation.
type Transaction struct {
	ID            string    `bson:"id" json:"id"`
	Type          string    `bson:"type" json:"type"`
	Amount        int       `bson:"amount" json:"amount"`
	Description   string    `bson:"description" json:"description"`
	RelatedUserID string    `bson:"relatedUserId,omitempty" json:"relatedUserId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// ProfileUnlock records permanent access to a counterparty's contact
// details. At most one entry exists per counterparty.
type ProfileUnlock struct {
	UserID     string    `bson:"userId" json:"userId"`
	UnlockedAt time.Time `bson:"unlockedAt" json:"unlockedAt"`
}

type Wallet struct {
	Balance          int             `bson:"balance" json:"balance"`
	Transactions     []Transaction   `bson:"transactions" json:"transactions,omitempty"`
	ProfilesUnlocked []ProfileUnlock `bson:"profilesUnlocked" json:"profilesUnlocked,omitempty"`
}

type PrivacySettings struct {
	ShowProfile      bool `bson:"showProfile" json:"showProfile"`
	ShowPhotos       bool `bson:"showPhotos" json:"showPhotos"`
	ShowContactInfo  bool `bson:"showContactInfo" json:"showContactInfo"`
	ShowOnlineStatus bool `bson:"showOnlineStatus" json:"showOnlineStatus"`
	AllowMessages    bool `bson:"allowMessages" json:"allowMessages"`
}

// NewUser builds a user document with registration-time defaults applied.
func NewUser(id, email, hashedPassword, phone, name string) *User {
	now := time.Now()
	return &User{
		ID:       id,
		Email:    email,
		Password: hashedPassword,
		Phone:    phone,
		Role:     RoleUser,
		BasicInfo: BasicInfo{
			Name:    name,
			Country: "India",
		},
		Preferences: DefaultPreferences(),
		Requests:    []ConnectionRequest{},
		IsActive:    true,
		Privacy: PrivacySettings{
			ShowProfile:      true,
			ShowPhotos:       true,
			ShowOnlineStatus: true,
			AllowMessages:    true,
		},
		Wallet: Wallet{
			Transactions:     []Transaction{},
			ProfilesUnlocked: []ProfileUnlock{},
		},
		LastActive: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// DefaultPreferences returns the preference set every new user starts
// with: wide-open ranges and no list constraints.
func DefaultPreferences() PartnerPreferences {
	return PartnerPreferences{
		AgeRange:          AgeRange{Min: 18, Max: 50},
		HeightRange:       HeightRange{Min: 100, Max: 250},
		MinIncome:         IncomeNotSpecified,
		ManglikPreference: "doesnt_matter",
	}
}

// RequestFor returns the embedded request record referencing the given
// counterparty, or nil when no record exists.
func (u *User) RequestFor(counterpartyID string) *ConnectionRequest {
	for i := range u.Requests {
		if u.Requests[i].UserID == counterpartyID {
			return &u.Requests[i]
		}
	}
	return nil
}

// HasUnlocked reports whether the wallet already holds an unlock entry
// for the given counterparty.
func (u *User) HasUnlocked(counterpartyID string) bool {
	for _, p := range u.Wallet.ProfilesUnlocked {
		if p.UserID == counterpartyID {
			return true
		}
	}
	return false
}
