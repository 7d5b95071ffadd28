// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{})

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultBootTimeout, cfg.App.BootTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.App.LogFile)
	require.NoError(t, cfg.validate())
}

func TestNewClientConfig_KeepsExplicitValues(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:     App{LogFile: "x.log", BootTimeout: time.Second},
		Storage: Storage{DB: DB{DSN: "x.db"}},
		Adapter: Adapter{HTTPAddress: "host:1", RequestTimeout: 2 * time.Second},
	})

	assert.Equal(t, "x.log", cfg.App.LogFile)
	assert.Equal(t, time.Second, cfg.App.BootTimeout)
	assert.Equal(t, "x.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "host:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App:     ClientApp{BootTimeout: time.Second},
			Adapter: ClientAdapter{HTTPAddress: "http://localhost:8000", RequestTimeout: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "client.db"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "bare host port", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "localhost:8000" }},
		{name: "in-memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "bad scheme", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "ftp://host" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = " " }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero boot timeout", mutate: func(c *ClientConfig) { c.App.BootTimeout = 0 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_FromFlags(t *testing.T) {
	cfg, err := GetClientConfig([]string{"-a", "https://papers.example.com", "-d", "flags.db"})
	require.NoError(t, err)
	assert.Equal(t, "https://papers.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
}
