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

package service

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/lagnam/matrimony-service/internal/appconfig/model"
	"github.com/lagnam/matrimony-service/internal/system/cache"
	"github.com/lagnam/matrimony-service/internal/system/config"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
)

// Language bundles rarely change, so one cache instance serves the
// whole process.
var bundleCache = cache.NewCache(10 * time.Minute)

type AppConfigServiceInterface interface {
	ClientConfig() *model.ClientConfig
	Languages() []string
	LanguageBundle(lang string) (*model.LanguageBundle, error)
}

// AppConfigService is the default implementation of
// AppConfigServiceInterface.
type AppConfigService struct{}

// GetAppConfigService returns the app config service instance.
func GetAppConfigService() AppConfigServiceInterface {
	return &AppConfigService{}
}

// ClientConfig returns the public bootstrap payload.
func (s *AppConfigService) ClientConfig() *model.ClientConfig {
	cfg := config.GetConfig()
	return &model.ClientConfig{
		Broker: cfg.Broker,
		App:    cfg.App,
	}
}

// Languages lists the locales the deployment ships bundles for.
func (s *AppConfigService) Languages() []string {
	return config.GetConfig().App.Languages
}

// LanguageBundle loads one locale's strings from the languages
// directory. Bundles are cached for ten minutes.
func (s *AppConfigService) LanguageBundle(lang string) (*model.LanguageBundle, error) {

	if !s.supported(lang) {
		return nil, errors2.NewClientError(errors2.ErrLanguageNotFound, http.StatusNotFound)
	}

	if cached, ok := bundleCache.Get(lang); ok {
		return cached.(*model.LanguageBundle), nil
	}

	path := filepath.Join(config.GetConfig().LanguagesDir, lang+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors2.NewClientError(errors2.ErrLanguageNotFound, http.StatusNotFound)
		}
		return nil, errors2.NewServerError(errors2.ErrWhileLoadingLanguage, err)
	}

	messages := map[string]string{}
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileLoadingLanguage, err)
	}

	bundle := &model.LanguageBundle{Language: lang, Messages: messages}
	bundleCache.Set(lang, bundle)

	log.GetLogger().Debug("Loaded language bundle",
		log.String("language", lang),
		log.Int("messages", len(messages)))
	return bundle, nil
}

func (s *AppConfigService) supported(lang string) bool {
	for _, supported := range config.GetConfig().App.Languages {
		if supported == lang {
			return true
		}
	}
	return false
}
