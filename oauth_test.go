package staffomatic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-staffomatic/auth"
	"github.com/MKhiriev/go-staffomatic/internal/adapter"
	"github.com/MKhiriev/go-staffomatic/options"
)

const webFlowToken = `{"access_token":"this_be_ye_token/use_it_wisely","token_type":"bearer","scope":"user"}`

func newStubServer(t *testing.T, r chi.Router) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newHTTPClient(srv *httptest.Server, defaults options.StaticDefaults) *Client {
	defaults.APIEndpoint = srv.URL + "/v3"
	defaults.DefaultMediaType = "application/vnd.staffomatic.v3+json"
	defaults.UserAgent = "Staffomatic Go test"
	return New(WithDefaults(defaults), WithTransport(adapter.NewHTTPTransport(nil)))
}

// ── ValidateCredentials ─────────────────────────────────────────────────────

func credentialsRouter(t *testing.T) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/v3/user", func(w http.ResponseWriter, r *http.Request) {
		login, password, ok := r.BasicAuth()
		if !ok || login != "alice" || password != "right" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"email":"alice@example.com"}`))
	})
	return r
}

func TestValidateCredentials_Valid(t *testing.T) {
	srv := newStubServer(t, credentialsRouter(t))
	c := newHTTPClient(srv, options.StaticDefaults{})

	ok, err := c.ValidateCredentials(context.Background(), "alice", "right")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateCredentials_Invalid(t *testing.T) {
	srv := newStubServer(t, credentialsRouter(t))
	c := newHTTPClient(srv, options.StaticDefaults{})

	ok, err := c.ValidateCredentials(context.Background(), "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateCredentials_IgnoresStoredCredentials(t *testing.T) {
	srv := newStubServer(t, credentialsRouter(t))
	c := newHTTPClient(srv, options.StaticDefaults{ClientID: "id", ClientSecret: "secret"})
	c.Configure(func(o *options.Options) { o.AccessToken = "tok" })
	before := c.Options()

	ok, err := c.ValidateCredentials(context.Background(), "alice", "right")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, before, c.Options())
	assert.Equal(t, auth.TokenAuth{Token: "tok"}, c.Credentials(auth.Overrides{}))
	assert.False(t, c.email.Populated())
}

func TestValidateCredentials_ServerError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v3/user", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := newStubServer(t, r)
	c := newHTTPClient(srv, options.StaticDefaults{})

	ok, err := c.ValidateCredentials(context.Background(), "alice", "right")
	assert.False(t, ok)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

// ── ExchangeCodeForToken ────────────────────────────────────────────────────

type exchangeRequest struct {
	Query  map[string]string
	Body   map[string]string
	Accept string
	CType  string
}

func exchangeRouter(t *testing.T, got *exchangeRequest) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		got.Query = map[string]string{}
		for k := range r.URL.Query() {
			got.Query[k] = r.URL.Query().Get(k)
		}
		got.Accept = r.Header.Get("Accept")
		got.CType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got.Body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(webFlowToken))
	})
	return r
}

func TestExchangeCodeForToken_ApplicationAuthenticatedClient(t *testing.T) {
	var got exchangeRequest
	srv := newStubServer(t, exchangeRouter(t, &got))
	c := newHTTPClient(srv, options.StaticDefaults{ClientID: "123", ClientSecret: "345"})

	token, err := c.ExchangeCodeForToken(context.Background(), "code", auth.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "this_be_ye_token/use_it_wisely", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, "user", token.Extra("scope"))
	assert.Equal(t, map[string]string{"client_id": "123", "client_secret": "345"}, got.Query)
	assert.Equal(t, map[string]string{"code": "code", "client_id": "123", "client_secret": "345"}, got.Body)
	assert.Equal(t, "application/json", got.Accept)
	assert.Equal(t, "application/json", got.CType)
}

func TestExchangeCodeForToken_UnauthenticatedClientWithParams(t *testing.T) {
	var got exchangeRequest
	srv := newStubServer(t, exchangeRouter(t, &got))
	c := newHTTPClient(srv, options.StaticDefaults{})

	token, err := c.ExchangeCodeForToken(context.Background(), "code", auth.Overrides{ClientID: "id", ClientSecret: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "this_be_ye_token/use_it_wisely", token.AccessToken)
	assert.Empty(t, got.Query)
	assert.Equal(t, map[string]string{"code": "code", "client_id": "id", "client_secret": "secret"}, got.Body)
}

func TestExchangeCodeForToken_OverridesReplaceStoredInBodyOnly(t *testing.T) {
	var got exchangeRequest
	srv := newStubServer(t, exchangeRouter(t, &got))
	c := newHTTPClient(srv, options.StaticDefaults{ClientID: "id", ClientSecret: "secret"})

	_, err := c.ExchangeCodeForToken(context.Background(), "code", auth.Overrides{ClientID: "123", ClientSecret: "345"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"client_id": "id", "client_secret": "secret"}, got.Query)
	assert.Equal(t, map[string]string{"code": "code", "client_id": "123", "client_secret": "345"}, got.Body)
	assert.Equal(t, "id", c.Options().ClientID)
}

func TestExchangeCodeForToken_PartialOverride(t *testing.T) {
	var got exchangeRequest
	srv := newStubServer(t, exchangeRouter(t, &got))
	c := newHTTPClient(srv, options.StaticDefaults{ClientID: "id", ClientSecret: "secret"})

	_, err := c.ExchangeCodeForToken(context.Background(), "code", auth.Overrides{ClientSecret: "345"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"code": "code", "client_id": "id", "client_secret": "345"}, got.Body)
}

func TestExchangeCodeForToken_Rejected(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad_verification_code"}`))
	})
	srv := newStubServer(t, r)
	c := newHTTPClient(srv, options.StaticDefaults{})

	token, err := c.ExchangeCodeForToken(context.Background(), "code", auth.Overrides{ClientID: "id", ClientSecret: "secret"})
	assert.Nil(t, token)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.ErrorContains(t, err, "bad_verification_code")
}

func TestWebEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"https://api.staffomatic.com/v3/", "https://staffomatic.com/"},
		{"https://api.staffomatic.com", "https://staffomatic.com/"},
		{"http://127.0.0.1:8080/v3/", "http://127.0.0.1:8080/"},
		{"https://staging.staffomatic.com/api/v3/", "https://staging.staffomatic.com/"},
		{"/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			assert.Equal(t, tt.want, webEndpoint(tt.endpoint))
		})
	}
}
