package relogin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/zentao/internal/app/relogin"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/session"
	"github.com/slok/zentao/internal/zentao/zentaomock"
)

func TestService_Run(t *testing.T) {
	tests := map[string]struct {
		reloginErr error
		expState   session.State
		expErr     func(t *testing.T, err error)
	}{
		"successful relogin": {
			expState: session.StateValid,
			expErr:   func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		"rejected login should return the login error": {
			reloginErr: &model.LoginFailedError{Result: "fail", Message: "wrong password"},
			expState:   session.StateReloginFailed,
			expErr: func(t *testing.T, err error) {
				var lErr *model.LoginFailedError
				assert.True(t, errors.As(err, &lErr))
			},
		},
		"broken login should return the refresh error": {
			reloginErr: &model.SessionRefreshError{Cause: errors.New("connection refused")},
			expState:   session.StateReloginFailed,
			expErr: func(t *testing.T, err error) {
				var rErr *model.SessionRefreshError
				assert.True(t, errors.As(err, &rErr))
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			m := &zentaomock.MockService{}
			m.On("Relogin", mock.Anything).Once().Return(test.reloginErr)

			guard, err := session.NewGuard(session.GuardConfig{Reloginer: m})
			require.NoError(err)

			svc, err := relogin.NewService(relogin.ServiceConfig{Zentao: m, Guard: guard})
			require.NoError(err)

			err = svc.Run(context.Background())

			test.expErr(t, err)
			assert.Equal(t, test.expState, guard.State())
			m.AssertExpectations(t)
		})
	}
}
