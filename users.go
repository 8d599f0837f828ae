// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staffomatic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-staffomatic/auth"
	"github.com/MKhiriev/go-staffomatic/models"
)

// User returns the user with the given id, or the authenticated user when
// id is zero.
func (c *Client) User(ctx context.Context, id int64) (*models.User, error) {
	conn := c.connection(c.store.Snapshot(), id == 0)

	var user models.User
	if err := c.transport.Get(ctx, conn, models.UserPath(id), &user); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// AllUsers lists the users of the account. With auto_paginate set every
// page is fetched.
func (c *Client) AllUsers(ctx context.Context) ([]models.User, error) {
	conn := c.connection(c.store.Snapshot(), false)

	items, err := c.transport.List(ctx, conn, "users")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]models.User, 0, len(items))
	for _, item := range items {
		var u models.User
		if err = json.Unmarshal(item, &u); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// Emails lists the addresses of the authenticated user.
func (c *Client) Emails(ctx context.Context) ([]models.Email, error) {
	conn := c.connection(c.store.Snapshot(), true)

	var emails []models.Email
	if err := c.transport.Get(ctx, conn, "user/emails", &emails); err != nil {
		return nil, fmt.Errorf("get emails: %w", err)
	}
	return emails, nil
}

// Email returns the login email. An explicitly configured email wins.
// Otherwise, for a token-authenticated client, the authenticated user's
// email is fetched once and memoized until the next Reset. Other clients
// get "" and nothing is memoized.
func (c *Client) Email(ctx context.Context) (string, error) {
	opts := c.store.Snapshot()
	if opts.Email != "" {
		return opts.Email, nil
	}
	if !auth.TokenAuthenticated(opts) {
		return "", nil
	}

	email, err := c.email.GetOrFetch(ctx, c.fetchEmail)
	if err != nil {
		c.log.Warn().Err(err).Msg("email lookup failed")
		return "", err
	}
	return email, nil
}

func (c *Client) fetchEmail(ctx context.Context) (string, error) {
	user, err := c.User(ctx, 0)
	if err != nil {
		return "", err
	}

	c.log.Debug().Msg("email fetched")
	return user.Email, nil
}
