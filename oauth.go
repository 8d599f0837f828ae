// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staffomatic

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/MKhiriev/go-staffomatic/auth"
	"github.com/MKhiriev/go-staffomatic/internal/adapter"
)

const (
	accessTokenPath = "login/oauth/access_token"
	jsonMediaType   = "application/json"
)

type accessTokenRequest struct {
	Code         string `json:"code"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type accessTokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}

// ValidateCredentials reports whether login and password are accepted by
// the API. A rejection yields false with a nil error; any other failure is
// returned. The client's options are neither read for credentials nor
// changed.
func (c *Client) ValidateCredentials(ctx context.Context, login, password string) (bool, error) {
	opts := c.store.Snapshot()
	conn := adapter.Connection{
		Endpoint:    opts.Endpoint(),
		Credentials: auth.BasicAuth{Login: login, Password: password},
		Options:     opts,
	}

	err := c.transport.Get(ctx, conn, "user", nil)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, adapter.ErrUnauthorized):
		return false, nil
	default:
		return false, fmt.Errorf("validate credentials: %w", err)
	}
}

// ExchangeCodeForToken trades an OAuth authorization code for an access
// token. The client id and secret sent in the body are overrides merged
// over the stored ones. The request itself authenticates like any other
// call of c, so an application-authenticated client also sends its
// credentials as query parameters.
func (c *Client) ExchangeCodeForToken(ctx context.Context, code string, overrides auth.Overrides) (*oauth2.Token, error) {
	opts := c.store.Snapshot()
	app := auth.AppCredentials(opts, overrides)

	conn := c.connection(opts, false)
	conn.Options.DefaultMediaType = jsonMediaType
	conn.Options.ContentType = jsonMediaType

	body := accessTokenRequest{
		Code:         code,
		ClientID:     app.ClientID,
		ClientSecret: app.ClientSecret,
	}

	var resp accessTokenResponse
	if err := c.transport.Post(ctx, conn, webEndpoint(conn.Endpoint)+accessTokenPath, body, &resp); err != nil {
		return nil, fmt.Errorf("exchange code for token: %w", err)
	}

	token := &oauth2.Token{
		AccessToken:  resp.AccessToken,
		TokenType:    resp.TokenType,
		RefreshToken: resp.RefreshToken,
	}
	if resp.ExpiresIn > 0 {
		token.ExpiresIn = resp.ExpiresIn
		token.Expiry = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	return token.WithExtra(map[string]any{"scope": resp.Scope}), nil
}

// webEndpoint returns the site root serving the OAuth web flow for an API
// endpoint: the path is dropped and a leading "api." host label removed.
func webEndpoint(apiEndpoint string) string {
	u, err := url.Parse(apiEndpoint)
	if err != nil || u.Host == "" {
		return apiEndpoint
	}

	host := strings.TrimPrefix(u.Host, "api.")
	return (&url.URL{Scheme: u.Scheme, Host: host, Path: "/"}).String()
}
