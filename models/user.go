// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// User is a Staffomatic account as returned by the users endpoints.
type User struct {
	// ID is the server-assigned user identifier.
	ID int64 `json:"id"`

	// Email is the primary contact address of the user. For the
	// authenticated user it is also the login used for basic auth.
	Email string `json:"email"`

	// FirstName and LastName make up the display name shown in the UI.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Locale is the preferred UI language (e.g. "de", "en").
	Locale string `json:"locale,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPath returns the API path for the user with the given id. A zero id
// addresses the authenticated user.
func UserPath(id int64) string {
	if id == 0 {
		return "user"
	}
	return "users/" + strconv.FormatInt(id, 10)
}
