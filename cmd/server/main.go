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

package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/lagnam/matrimony-service/internal/system/config"
	"github.com/lagnam/matrimony-service/internal/system/constants"
	"github.com/lagnam/matrimony-service/internal/system/database"
	"github.com/lagnam/matrimony-service/internal/system/log"
	"github.com/lagnam/matrimony-service/internal/system/managers"
)

func main() {
	configFile := flag.String("config", "config/deployment.yaml", "Path to the deployment configuration file")
	flag.Parse()

	// Env files are optional; environment variables override the yaml.
	_ = godotenv.Load("config/.env")

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	if err := log.Init(cfg.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	db, err := database.ConnectMongoDB(cfg.Mongo.URI, cfg.Mongo.DbName)
	if err != nil {
		stdlog.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = db.Disconnect() }()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	mux := initMultiplexer()

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		stdlog.Fatalf("Failed to listen on %s: %v", serverAddr, err)
	}
	logger.Info("Matrimony service started", log.String("addr", serverAddr))

	server := &http.Server{Handler: enableCORS(mux)}
	if err := server.Serve(ln); err != nil {
		logger.Error("Failed to serve requests", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler) http.Handler {
	allowed := "*"
	if origins := config.GetConfig().Auth.CORSAllowedOrigins; len(origins) > 0 {
		allowed = origins[0]
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowed)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
