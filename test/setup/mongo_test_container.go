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

package setup

import (
	"context"
	"fmt"
	"log"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestMongo struct {
	Container testcontainers.Container
	Client    *mongo.Client
	URI       string
}

// SetupTestMongo starts a throwaway MongoDB container and connects a
// client to it.
func SetupTestMongo(ctx context.Context) (*TestMongo, error) {
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "27017")

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	log.Printf("✅ Mongo container started at %s:%s", host, port.Port())

	return &TestMongo{
		Container: container,
		Client:    client,
		URI:       uri,
	}, nil
}

// Teardown disconnects the client and stops the container.
func (m *TestMongo) Teardown(ctx context.Context) {
	_ = m.Client.Disconnect(ctx)
	_ = m.Container.Terminate(ctx)
}
