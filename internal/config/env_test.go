// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_FILE":     "/tmp/client.log",
		"APP_BOOT_TIMEOUT": "25s",

		"ADAPTER_ADDRESS":         "https://papers.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "10s",

		"STORAGE_DB_DSN": "/var/lib/collab/client.db",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
	assert.Equal(t, 25*time.Second, cfg.App.BootTimeout)
	assert.Equal(t, "https://papers.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/collab/client.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnvFrom_BlankValuesAreUnset(t *testing.T) {
	cfg := &StructuredConfig{}

	err := parseEnvFrom(cfg, map[string]string{
		"ADAPTER_ADDRESS":         "   ",
		"ADAPTER_REQUEST_TIMEOUT": "",
		"STORAGE_DB_DSN":          "client.db",
	})

	require.NoError(t, err)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
}
