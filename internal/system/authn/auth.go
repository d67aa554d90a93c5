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

package authn

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lagnam/matrimony-service/internal/system/config"
	"github.com/lagnam/matrimony-service/internal/system/constants"
	errors2 "github.com/lagnam/matrimony-service/internal/system/errors"
	"github.com/lagnam/matrimony-service/internal/system/log"
	"github.com/lagnam/matrimony-service/internal/system/utils"
)

// ValidateToken verifies an HS256 bearer token and returns its claims.
func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	cfg := config.GetConfig()

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, unauthorizedError("Token is invalid or expired.")
	}
	return claims, nil
}

// RequireAuth wraps a handler and rejects requests without a valid bearer
// token. The subject and role claims are placed on the request context.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.HandleError(w, unauthorizedError("Missing or invalid Authorization header."))
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := ValidateToken(tokenString)
		if err != nil {
			utils.HandleError(w, err)
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			log.GetLogger().Debug("Token is missing the sub claim")
			utils.HandleError(w, unauthorizedError("Token is missing the subject claim."))
			return
		}

		ctx := context.WithValue(r.Context(), constants.UserIDContextKey, sub)
		if role, ok := claims["role"].(string); ok {
			ctx = context.WithValue(ctx, constants.RoleContextKey, role)
		}
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin wraps a handler and additionally requires the admin role claim.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constants.RoleContextKey).(string)
		if role != constants.AdminRole {
			utils.HandleError(w, errors2.NewClientError(errors2.ErrForbidden, http.StatusForbidden))
			return
		}
		next(w, r)
	})
}

// UserIDFromRequest returns the authenticated user id set by RequireAuth.
func UserIDFromRequest(r *http.Request) string {
	userID, _ := r.Context().Value(constants.UserIDContextKey).(string)
	return userID
}

func unauthorizedError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.ErrUnauthorized.Code,
		Message:     errors2.ErrUnauthorized.Message,
		Description: description,
	}, http.StatusUnauthorized)
}
