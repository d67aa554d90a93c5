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

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/lagnam/matrimony-service/internal/system/constants"
)

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DbName string `yaml:"dbname"`
}

type AuthConfig struct {
	JWTSecret          string   `yaml:"jwt_secret"`
	TokenExpiryMinutes int      `yaml:"token_expiry_minutes"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type WalletConfig struct {
	UnlockCost int `yaml:"unlock_cost"`
}

type BrokerConfig struct {
	Name     string `yaml:"name" json:"name"`
	Tagline  string `yaml:"tagline" json:"tagline"`
	Phone    string `yaml:"phone" json:"phone"`
	WhatsApp string `yaml:"whatsapp" json:"whatsapp"`
	Email    string `yaml:"email" json:"email"`
	Address  string `yaml:"address" json:"address"`
}

type AppConfig struct {
	DefaultLanguage string   `yaml:"default_language" json:"defaultLanguage"`
	Languages       []string `yaml:"languages" json:"languages"`
	MinAge          int      `yaml:"min_age" json:"minAge"`
	MaxAge          int      `yaml:"max_age" json:"maxAge"`
}

type Config struct {
	Addr         AddrConfig   `yaml:"addr"`
	Log          LogConfig    `yaml:"log"`
	Mongo        MongoConfig  `yaml:"mongo"`
	Auth         AuthConfig   `yaml:"auth"`
	Wallet       WalletConfig `yaml:"wallet"`
	Broker       BrokerConfig `yaml:"broker"`
	App          AppConfig    `yaml:"app"`
	LanguagesDir string       `yaml:"languages_dir"`
}

var loadedConfig *Config

// LoadConfig reads the deployment yaml, applies environment overrides and
// keeps the result as the process-wide configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	loadedConfig = &cfg
	return &cfg, nil
}

// GetConfig returns the configuration loaded at startup. Before
// LoadConfig runs it returns a config carrying only the defaults.
func GetConfig() *Config {
	if loadedConfig == nil {
		cfg := &Config{}
		applyDefaults(cfg)
		loadedConfig = cfg
	}
	return loadedConfig
}

// SetConfig replaces the process configuration. Intended for tests.
func SetConfig(cfg *Config) {
	loadedConfig = cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DBNAME"); v != "" {
		cfg.Mongo.DbName = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Addr.Port = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Addr.Port == 0 {
		cfg.Addr.Port = 8080
	}
	if cfg.Wallet.UnlockCost == 0 {
		cfg.Wallet.UnlockCost = constants.DefaultUnlockCost
	}
	if cfg.Auth.TokenExpiryMinutes == 0 {
		cfg.Auth.TokenExpiryMinutes = 7 * 24 * 60
	}
	if cfg.App.DefaultLanguage == "" {
		cfg.App.DefaultLanguage = "en"
	}
	if len(cfg.App.Languages) == 0 {
		cfg.App.Languages = []string{"en"}
	}
	if cfg.App.MinAge == 0 {
		cfg.App.MinAge = 18
	}
	if cfg.App.MaxAge == 0 {
		cfg.App.MaxAge = 100
	}
	if cfg.LanguagesDir == "" {
		cfg.LanguagesDir = "config/lang"
	}
}
