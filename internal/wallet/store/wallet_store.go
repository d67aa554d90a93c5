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

// WalletStore mutates the wallet embedded in a user document. The
// unlock mutation bundles its three writes into one single-document
// update so they apply together or not at all.
type WalletStore struct {
	collection *mongo.Collection
}

// NewWalletStore creates a store bound to the given database.
func NewWalletStore(db *mongo.Database) *WalletStore {
	return &WalletStore{
		collection: db.Collection(constants.UserCollection),
	}
}

// DefaultWalletStore creates a store on the global MongoDB connection.
func DefaultWalletStore() *WalletStore {
	return NewWalletStore(database.GetMongoDBInstance().Database)
}

// GetUser loads a full user document. A missing document is not an error.
func (s *WalletStore) GetUser(id string) (*model.User, error) {
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

// ApplyUnlock debits the balance and appends the debit transaction and
// unlock entry in one update. The filter re-checks the balance and the
// absence of an existing unlock entry so a concurrent unlock cannot
// double-spend. Reports whether the update applied.
func (s *WalletStore) ApplyUnlock(ownerID string, cost int, tx model.Transaction, unlock model.ProfileUnlock) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":                            ownerID,
		"wallet.balance":                 bson.M{"$gte": cost},
		"wallet.profilesUnlocked.userId": bson.M{"$ne": unlock.UserID},
	}
	update := bson.M{
		"$inc": bson.M{"wallet.balance": -cost},
		"$push": bson.M{
			"wallet.transactions":     tx,
			"wallet.profilesUnlocked": unlock,
		},
	}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// ApplyCredit increments the balance and appends the credit transaction.
// Reports whether a document matched.
func (s *WalletStore) ApplyCredit(ownerID string, amount int, tx model.Transaction) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc":  bson.M{"wallet.balance": amount},
		"$push": bson.M{"wallet.transactions": tx},
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": ownerID}, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
