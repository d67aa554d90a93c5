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
	"github.com/lagnam/matrimony-service/internal/system/config"
)

// ClientConfig is the public app bootstrap payload.
type ClientConfig struct {
	Broker config.BrokerConfig `json:"broker"`
	App    config.AppConfig    `json:"app"`
}

// LanguageBundle is one locale's translated strings, keyed by message id.
type LanguageBundle struct {
	Language string            `json:"language"`
	Messages map[string]string `json:"messages"`
}
