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

package errors

const errorPrefix = "MAT-"

var (
	// Client error codes.

	ErrUserNotFound = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "User not found.",
	}

	ErrEmailAlreadyRegistered = ErrorMessage{
		Code:    errorPrefix + "10002",
		Message: "A user with this email already exists.",
	}

	ErrInvalidCredentials = ErrorMessage{
		Code:    errorPrefix + "10003",
		Message: "Invalid email or password.",
	}

	ErrMissingRequiredField = ErrorMessage{
		Code:    errorPrefix + "10004",
		Message: "A required field is missing.",
	}

	ErrInvalidRequestBody = ErrorMessage{
		Code:    errorPrefix + "10005",
		Message: "Malformed request body.",
	}

	ErrValidationFailed = ErrorMessage{
		Code:    errorPrefix + "10006",
		Message: "Profile field violates a domain constraint.",
	}

	ErrInvalidOnboardingStep = ErrorMessage{
		Code:    errorPrefix + "10007",
		Message: "Invalid onboarding step.",
	}

	ErrInvalidPagination = ErrorMessage{
		Code:    errorPrefix + "10008",
		Message: "Invalid pagination parameters.",
	}

	ErrSelfConnectionRequest = ErrorMessage{
		Code:    errorPrefix + "10009",
		Message: "Cannot send a connection request to yourself.",
	}

	ErrTargetInactive = ErrorMessage{
		Code:    errorPrefix + "10010",
		Message: "This user is no longer active.",
	}

	ErrDuplicateConnectionRequest = ErrorMessage{
		Code:    errorPrefix + "10011",
		Message: "A connection request already exists for this user.",
	}

	ErrConnectionRequestNotFound = ErrorMessage{
		Code:    errorPrefix + "10012",
		Message: "Connection request not found.",
	}

	ErrConnectionRequestResolved = ErrorMessage{
		Code:    errorPrefix + "10013",
		Message: "Connection request has already been responded to.",
	}

	ErrInvalidConnectionAction = ErrorMessage{
		Code:    errorPrefix + "10014",
		Message: "Action must be either \"accept\" or \"reject\".",
	}

	ErrSelfUnlock = ErrorMessage{
		Code:    errorPrefix + "10015",
		Message: "Cannot unlock your own profile.",
	}

	ErrInsufficientBalance = ErrorMessage{
		Code:    errorPrefix + "10016",
		Message: "Insufficient wallet balance.",
	}

	ErrInvalidCreditAmount = ErrorMessage{
		Code:    errorPrefix + "10017",
		Message: "Credit amount must be greater than zero.",
	}

	ErrUnauthorized = ErrorMessage{
		Code:    errorPrefix + "10018",
		Message: "Missing or invalid credentials.",
	}

	ErrForbidden = ErrorMessage{
		Code:    errorPrefix + "10019",
		Message: "Insufficient privileges for this operation.",
	}

	ErrLanguageNotFound = ErrorMessage{
		Code:    errorPrefix + "10020",
		Message: "Requested language is not available.",
	}

	// Server error codes.

	ErrWhileFetchingUser = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while fetching user.",
	}

	ErrWhileInsertingUser = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while inserting user.",
	}

	ErrWhileUpdatingUser = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while updating user.",
	}

	ErrWhileDeletingUser = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while deleting user.",
	}

	ErrWhileQueryingCandidates = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while querying candidate profiles.",
	}

	ErrWhileUpdatingConnection = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while updating connection request records.",
	}

	ErrWhileUpdatingWallet = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while updating wallet.",
	}

	ErrWhileLoadingLanguage = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while loading language bundle.",
	}

	ErrWhileIssuingToken = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while issuing access token.",
	}
)
