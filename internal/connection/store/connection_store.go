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

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lagnam/matrimony-service/internal/system/constants"
	"github.com/lagnam/matrimony-service/internal/system/database"
	"github.com/lagnam/matrimony-service/internal/user/model"
)

// ConnectionStore mutates the mirrored request records embedded in user
// documents. Every operation touches a single document; pairing the two
// sides is the service's responsibility.
type ConnectionStore struct {
	collection *mongo.Collection
}

// NewConnectionStore creates a store bound to the given database.
func NewConnectionStore(db *mongo.Database) *ConnectionStore {
	return &ConnectionStore{
		collection: db.Collection(constants.UserCollection),
	}
}

// DefaultConnectionStore creates a store on the global MongoDB connection.
func DefaultConnectionStore() *ConnectionStore {
	return NewConnectionStore(database.GetMongoDBInstance().Database)
}

// GetUser loads a full user document. A missing document is not an error.
func (s *ConnectionStore) GetUser(id string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user model.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// PushRequest appends a request record to the owner's list.
func (s *ConnectionStore) PushRequest(ownerID string, req model.ConnectionRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": ownerID},
		bson.M{"$push": bson.M{"connectionRequests": req}})
	return err
}

// SetRequestStatus resolves the owner's record referencing the
// counterparty with the given direction. Reports whether a record matched.
func (s *ConnectionStore) SetRequestStatus(ownerID, counterpartyID, direction, status string, respondedAt time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id": ownerID,
		"connectionRequests": bson.M{
			"$elemMatch": bson.M{
				"userId": counterpartyID,
				"type":   direction,
			},
		},
	}
	update := bson.M{"$set": bson.M{
		"connectionRequests.$.status":      status,
		"connectionRequests.$.respondedAt": respondedAt,
	}}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// PullRequest removes the owner's record referencing the counterparty,
// regardless of status. Removing an absent record is a no-op.
func (s *ConnectionStore) PullRequest(ownerID, counterpartyID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": ownerID},
		bson.M{"$pull": bson.M{"connectionRequests": bson.M{"userId": counterpartyID}}})
	return err
}
