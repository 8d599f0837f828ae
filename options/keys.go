// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import (
	"fmt"
	"strconv"
)

// Key identifies one configuration option.
type Key uint8

const (
	KeyAccessToken Key = iota
	KeyAccount
	KeyAPIEndpoint
	KeyAutoPaginate
	KeyClientID
	KeyClientSecret
	KeyConnectionOptions
	KeyDefaultMediaType
	KeyEmail
	KeyMiddleware
	KeyPerPage
	KeyPassword
	KeyProxy
	KeyScheme
	KeyUserAgent
	KeyContentType

	keyCount
)

var keyNames = [keyCount]string{
	KeyAccessToken:       "access_token",
	KeyAccount:           "account",
	KeyAPIEndpoint:       "api_endpoint",
	KeyAutoPaginate:      "auto_paginate",
	KeyClientID:          "client_id",
	KeyClientSecret:      "client_secret",
	KeyConnectionOptions: "connection_options",
	KeyDefaultMediaType:  "default_media_type",
	KeyEmail:             "email",
	KeyMiddleware:        "middleware",
	KeyPerPage:           "per_page",
	KeyPassword:          "password",
	KeyProxy:             "proxy",
	KeyScheme:            "scheme",
	KeyUserAgent:         "user_agent",
	KeyContentType:       "content_type",
}

var keyKinds = [keyCount]Kind{
	KeyAccessToken:       KindString,
	KeyAccount:           KindString,
	KeyAPIEndpoint:       KindString,
	KeyAutoPaginate:      KindBool,
	KeyClientID:          KindString,
	KeyClientSecret:      KindString,
	KeyConnectionOptions: KindConnection,
	KeyDefaultMediaType:  KindString,
	KeyEmail:             KindString,
	KeyMiddleware:        KindMiddleware,
	KeyPerPage:           KindInt,
	KeyPassword:          KindString,
	KeyProxy:             KindString,
	KeyScheme:            KindString,
	KeyUserAgent:         KindString,
	KeyContentType:       KindString,
}

// Keys returns every recognised key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// ParseKey maps an option name such as "client_id" to its Key.
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Valid reports whether k belongs to the option set.
func (k Key) Valid() bool {
	return k < keyCount
}

// Kind returns the value kind declared for k, or KindUnset for an invalid key.
func (k Key) Kind() Kind {
	if !k.Valid() {
		return KindUnset
	}
	return keyKinds[k]
}

// String returns the option name of k.
func (k Key) String() string {
	if !k.Valid() {
		return "Key(" + strconv.Itoa(int(k)) + ")"
	}
	return keyNames[k]
}
