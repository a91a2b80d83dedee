package io

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/zentao/internal/model"
)

func TestCredentialsYAMLRepository_GetCredentials(t *testing.T) {
	tests := map[string]struct {
		fs       fstest.MapFS
		path     string
		expCreds model.Credentials
		expErr   bool
		errMsg   string
	}{
		"Complete config should load successfully": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte(`url: http://zentao.local/zentao
sid: 0a1b2c3d
username: alice
password: s3cr3t
cookie_name: zentaosid
`),
				},
			},
			path: "config.yaml",
			expCreds: model.Credentials{
				BaseURL:           "http://zentao.local/zentao",
				SessionID:         "0a1b2c3d",
				Username:          "alice",
				Password:          "s3cr3t",
				SessionCookieName: "zentaosid",
			},
		},
		"Partial config should load successfully": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte(`url: https://zentao.local
username: bob
`),
				},
			},
			path: "config.yaml",
			expCreds: model.Credentials{
				BaseURL:  "https://zentao.local",
				Username: "bob",
			},
		},
		"Empty config should load successfully": {
			fs: fstest.MapFS{
				"empty.yaml": &fstest.MapFile{
					Data: []byte(`---
`),
				},
			},
			path:     "empty.yaml",
			expCreds: model.Credentials{},
		},
		"Missing file should return error": {
			fs:     fstest.MapFS{},
			path:   "nonexistent.yaml",
			expErr: true,
			errMsg: "reading config file",
		},
		"Invalid YAML should return error": {
			fs: fstest.MapFS{
				"invalid.yaml": &fstest.MapFile{
					Data: []byte(`invalid: yaml: content: {}`),
				},
			},
			path:   "invalid.yaml",
			expErr: true,
			errMsg: "parsing YAML",
		},
		"A non http url should return error": {
			fs: fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte(`url: ftp://zentao.local
`),
				},
			},
			path:   "config.yaml",
			expErr: true,
			errMsg: "invalid configuration",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			repo := NewCredentialsYAMLRepository(tc.fs)
			creds, err := repo.GetCredentials(context.Background(), tc.path)

			if tc.expErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expCreds, creds)
		})
	}
}

func TestCredentialsYAMLRepository_GetCredentials_ContextCancellation(t *testing.T) {
	fs := fstest.MapFS{
		"config.yaml": &fstest.MapFile{
			Data: []byte(`username: alice
`),
		},
	}

	repo := NewCredentialsYAMLRepository(fs)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetCredentials(ctx, "config.yaml")
	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}
