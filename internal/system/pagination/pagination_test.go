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

package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
)

func TestParsePageDefaultsAndBounds(t *testing.T) {
	page, err := ParsePage(httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.NoError(t, err)
	assert.Equal(t, 1, page)

	page, err = ParsePage(httptest.NewRequest(http.MethodGet, "/items?page=3", nil))
	assert.NoError(t, err)
	assert.Equal(t, 3, page)
}

func TestParseLimitCapped(t *testing.T) {
	limit, err := ParseLimit(httptest.NewRequest(http.MethodGet, "/items?limit=500", nil))
	assert.NoError(t, err)
	assert.Equal(t, maxLimit, limit)
}

func TestParseSkipDefaultsToZero(t *testing.T) {
	skip, err := ParseSkip(httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.NoError(t, err)
	assert.Equal(t, 0, skip)

	skip, err = ParseSkip(httptest.NewRequest(http.MethodGet, "/items?skip=40", nil))
	assert.NoError(t, err)
	assert.Equal(t, 40, skip)
}

// Bad pagination parameters must surface as 400s, not server faults.
func TestBadParametersAreClientErrors(t *testing.T) {
	cases := []struct {
		name  string
		query string
		parse func(*http.Request) (int, error)
	}{
		{"zero page", "page=0", ParsePage},
		{"non-numeric page", "page=abc", ParsePage},
		{"zero limit", "limit=0", ParseLimit},
		{"negative skip", "skip=-1", ParseSkip},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/items?"+tc.query, nil)
			_, err := tc.parse(r)

			var clientErr *errors2.ClientError
			assert.ErrorAs(t, err, &clientErr)
			assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
			assert.Equal(t, errors2.ErrInvalidPagination.Code, clientErr.ErrorMessage.Code)
		})
	}
}
