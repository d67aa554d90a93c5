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

package database

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lagnam/matrimony-service/internal/system/log"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	mongoInstance *MongoDB
	once          sync.Once
)

// ConnectMongoDB initializes the global MongoDB connection. The connection
// is established once; subsequent calls return the same instance.
func ConnectMongoDB(uri, dbName string) (*MongoDB, error) {
	var connectErr error
	once.Do(func() {
		logger := log.GetLogger()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			connectErr = err
			return
		}

		if err := client.Ping(ctx, nil); err != nil {
			connectErr = err
			return
		}

		logger.Info("Connected to MongoDB", log.String("database", dbName))

		mongoInstance = &MongoDB{
			Client:   client,
			Database: client.Database(dbName),
		}
	})

	return mongoInstance, connectErr
}

// GetMongoDBInstance returns the MongoDB instance established at startup.
func GetMongoDBInstance() *MongoDB {
	return mongoInstance
}

// Disconnect closes the MongoDB connection.
func (m *MongoDB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}
