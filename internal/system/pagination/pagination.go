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
	"strconv"

	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ParsePage reads the `page` query parameter. Pages are 1-based.
func ParsePage(r *http.Request) (int, error) {
	page := defaultPage

	if p := r.URL.Query().Get("page"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil || v < 1 {
			return 0, invalidParamError("page must be a positive integer")
		}
		page = v
	}

	return page, nil
}

// ParseLimit reads the `limit` query parameter, capped at maxLimit.
func ParseLimit(r *http.Request) (int, error) {
	limit := defaultLimit

	if l := r.URL.Query().Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 1 {
			return 0, invalidParamError("limit must be a positive integer")
		}
		if v > maxLimit {
			v = maxLimit
		}
		limit = v
	}

	return limit, nil
}

// ParseSkip reads the `skip` query parameter used by list endpoints that
// paginate with an offset rather than a page number.
func ParseSkip(r *http.Request) (int, error) {
	skip := 0

	if s := r.URL.Query().Get("skip"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, invalidParamError("skip cannot be negative")
		}
		skip = v
	}

	return skip, nil
}

// invalidParamError maps a bad pagination parameter to the client-side
// error the handlers pass straight to utils.HandleError.
func invalidParamError(description string) error {
	msg := errors2.ErrInvalidPagination
	msg.Description = description
	return errors2.NewClientError(msg, http.StatusBadRequest)
}

// TotalPages computes the page count for a total and page size.
func TotalPages(totalCount int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := totalCount / int64(pageSize)
	if totalCount%int64(pageSize) != 0 {
		pages++
	}
	return int(pages)
}
