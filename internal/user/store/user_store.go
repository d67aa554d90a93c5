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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lagnam/matrimony-service/internal/system/constants"
	"github.com/lagnam/matrimony-service/internal/system/database"
	"github.com/lagnam/matrimony-service/internal/user/model"
)

// SensitiveFieldsProjection excludes the credential and the request list
// from documents returned to listing and candidate queries.
var SensitiveFieldsProjection = bson.M{
	"password":           0,
	"connectionRequests": 0,
}

// UserStore handles MongoDB operations for user documents.
type UserStore struct {
	collection *mongo.Collection
}

// NewUserStore creates a store bound to the given database.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{
		collection: db.Collection(constants.UserCollection),
	}
}

// DefaultUserStore creates a store on the global MongoDB connection.
func DefaultUserStore() *UserStore {
	return NewUserStore(database.GetMongoDBInstance().Database)
}

// Insert saves a new user document.
func (s *UserStore) Insert(user *model.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.collection.InsertOne(ctx, user)
	return err
}

// FindByID retrieves a user by id. A missing document is not an error.
func (s *UserStore) FindByID(id string) (*model.User, error) {
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

// FindByEmail retrieves a user by their unique email.
func (s *UserStore) FindByEmail(email string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user model.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindPublicByID retrieves a user without the credential and request
// list fields.
func (s *UserStore) FindPublicByID(id string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(SensitiveFieldsProjection)

	var user model.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateFields applies a $set update to a user and stamps updatedAt.
// Reports whether a document matched.
func (s *UserStore) UpdateFields(id string, fields bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// TouchLastActive stamps the lastActive field.
func (s *UserStore) TouchLastActive(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastActive": time.Now()}})
	return err
}

// Count returns the number of user documents matching the filter.
func (s *UserStore) Count(filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.collection.CountDocuments(ctx, filter)
}

// FindPage fetches one page of user documents matching the filter,
// excluding sensitive fields.
func (s *UserStore) FindPage(filter bson.M, skip, limit int64, sort bson.D) ([]model.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(SensitiveFieldsProjection).
		SetSkip(skip).
		SetLimit(limit)
	if sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes a user document. Reports whether a document existed.
func (s *UserStore) Delete(id string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// PullRequestsReferencing strips the given id from every other user's
// request list. Used by the account-deletion cascade.
func (s *UserStore) PullRequestsReferencing(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.collection.UpdateMany(ctx,
		bson.M{"connectionRequests.userId": id},
		bson.M{"$pull": bson.M{"connectionRequests": bson.M{"userId": id}}})
	return err
}
