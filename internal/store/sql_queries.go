// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	loadCredentials = `
		SELECT key, value
		FROM credentials
		WHERE key IN (?, ?);`

	upsertCredential = `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	clearCredentials = `DELETE FROM credentials;`
)
