// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [Config].
type StructuredJSONConfig struct {
	APIEndpoint      string `json:"api_endpoint"`
	Account          string `json:"account"`
	Scheme           string `json:"scheme"`
	AccessToken      string `json:"access_token"`
	ClientID         string `json:"client_id"`
	ClientSecret     string `json:"client_secret"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	AutoPaginate     bool   `json:"auto_paginate"`
	PerPage          int    `json:"per_page"`
	Proxy            string `json:"proxy"`
	UserAgent        string `json:"user_agent"`
	DefaultMediaType string `json:"default_media_type"`
	ContentType      string `json:"content_type"`
	Debug            bool   `json:"debug"`

	Connection struct {
		Timeout       Duration          `json:"timeout"`
		RetryCount    int               `json:"retry_count"`
		RetryWaitTime Duration          `json:"retry_wait_time"`
		Headers       map[string]string `json:"headers"`
	} `json:"connection_options,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		APIEndpoint:      jsonCfg.APIEndpoint,
		Account:          jsonCfg.Account,
		Scheme:           jsonCfg.Scheme,
		AccessToken:      jsonCfg.AccessToken,
		ClientID:         jsonCfg.ClientID,
		ClientSecret:     jsonCfg.ClientSecret,
		Email:            jsonCfg.Email,
		Password:         jsonCfg.Password,
		AutoPaginate:     jsonCfg.AutoPaginate,
		PerPage:          jsonCfg.PerPage,
		Proxy:            jsonCfg.Proxy,
		UserAgent:        jsonCfg.UserAgent,
		DefaultMediaType: jsonCfg.DefaultMediaType,
		ContentType:      jsonCfg.ContentType,
		Debug:            jsonCfg.Debug,
		Connection: Connection{
			Timeout:       time.Duration(jsonCfg.Connection.Timeout),
			RetryCount:    jsonCfg.Connection.RetryCount,
			RetryWaitTime: time.Duration(jsonCfg.Connection.RetryWaitTime),
			Headers:       jsonCfg.Connection.Headers,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
