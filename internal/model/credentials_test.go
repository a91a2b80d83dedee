package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/zentao/internal/model"
)

func TestCredentialsValidate(t *testing.T) {
	tests := map[string]struct {
		creds    model.Credentials
		expCreds model.Credentials
		expErr   bool
	}{
		"Valid credentials should set the default cookie name.": {
			creds: model.Credentials{BaseURL: "http://zentao.local/", SessionID: "sid", Username: "alice"},
			expCreds: model.Credentials{
				BaseURL:           "http://zentao.local",
				SessionID:         "sid",
				Username:          "alice",
				SessionCookieName: model.DefaultSessionCookieName,
			},
		},
		"Custom cookie name should be kept.": {
			creds: model.Credentials{BaseURL: "https://zentao.local/zentao", SessionID: "sid", Username: "alice", SessionCookieName: "zsid"},
			expCreds: model.Credentials{
				BaseURL:           "https://zentao.local/zentao",
				SessionID:         "sid",
				Username:          "alice",
				SessionCookieName: "zsid",
			},
		},
		"Missing base url should fail.": {
			creds:  model.Credentials{SessionID: "sid", Username: "alice"},
			expErr: true,
		},
		"Relative base url should fail.": {
			creds:  model.Credentials{BaseURL: "zentao.local", SessionID: "sid", Username: "alice"},
			expErr: true,
		},
		"Non http base url should fail.": {
			creds:  model.Credentials{BaseURL: "ftp://zentao.local", SessionID: "sid", Username: "alice"},
			expErr: true,
		},
		"Missing session id should fail.": {
			creds:  model.Credentials{BaseURL: "http://zentao.local", Username: "alice"},
			expErr: true,
		},
		"Missing username should fail.": {
			creds:  model.Credentials{BaseURL: "http://zentao.local", SessionID: "sid"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.creds.Validate()

			if test.expErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrNotValid)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.expCreds, test.creds)
			}
		})
	}
}

func TestFinishTaskRequestValidate(t *testing.T) {
	tests := map[string]struct {
		req       model.FinishTaskRequest
		expStatus string
		expErr    bool
	}{
		"Missing status should default to done.": {
			req:       model.FinishTaskRequest{TaskID: "1", CurrentConsumed: "2", FinishedDate: "2025-01-01 18:00"},
			expStatus: model.FinishTaskStatusDone,
		},
		"Missing task id should fail.": {
			req:    model.FinishTaskRequest{CurrentConsumed: "2", FinishedDate: "2025-01-01 18:00"},
			expErr: true,
		},
		"Missing consumed hours should fail.": {
			req:    model.FinishTaskRequest{TaskID: "1", FinishedDate: "2025-01-01 18:00"},
			expErr: true,
		},
		"Missing finished date should fail.": {
			req:    model.FinishTaskRequest{TaskID: "1", CurrentConsumed: "2"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.req.Validate()

			if test.expErr {
				assert.ErrorIs(t, err, model.ErrNotValid)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.expStatus, test.req.Status)
			}
		})
	}
}

func TestCredentialsMerge(t *testing.T) {
	file := model.Credentials{
		BaseURL:   "http://zentao.local",
		SessionID: "from-file",
		Username:  "alice",
		Password:  "secret",
	}

	got := file.Merge(model.Credentials{SessionID: "from-flag", Password: "  "})

	exp := model.Credentials{
		BaseURL:   "http://zentao.local",
		SessionID: "from-flag",
		Username:  "alice",
		Password:  "secret",
	}
	assert.Equal(t, exp, got)
}
