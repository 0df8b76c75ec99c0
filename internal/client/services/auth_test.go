package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/mhpportal/internal/client/api"
	"github.com/dmitrijs2005/mhpportal/internal/client/api/apitest"
	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/client/session"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestLogin_StoresToken(t *testing.T) {
	f := &apitest.Fake{LoginResp: models.Token{AccessToken: "jwt"}}
	store := session.NewMemoryStore("")
	a := NewAuthService(f, store, logging.Discard())

	require.NoError(t, a.Login(context.Background(), "admin@mhp.com", "admin123"))
	require.Equal(t, [2]string{"admin@mhp.com", "admin123"}, f.LastLogin)

	tok, _ := store.Get(context.Background())
	require.Equal(t, "jwt", tok)
}

func TestLogin_MissingFields_NoRequest(t *testing.T) {
	f := &apitest.Fake{}
	a := NewAuthService(f, session.NewMemoryStore(""), logging.Discard())

	err := a.Login(context.Background(), "", "")
	require.Error(t, err)
	require.Equal(t, "email is required; password is required", LoginMessage(err))
	require.Empty(t, f.Calls())
}

func TestLogin_Rejected(t *testing.T) {
	f := &apitest.Fake{LoginErr: &api.Error{StatusCode: 401, Detail: "Incorrect email or password"}}
	store := session.NewMemoryStore("")
	a := NewAuthService(f, store, logging.Discard())

	err := a.Login(context.Background(), "a@mhp.com", "bad")
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Equal(t, "Incorrect email or password", LoginMessage(err))

	tok, _ := store.Get(context.Background())
	require.Empty(t, tok)

	require.Equal(t, MsgLoginFailed, LoginMessage(api.ErrUnavailable))
}

func TestLogin_EmptyToken(t *testing.T) {
	a := NewAuthService(&apitest.Fake{}, session.NewMemoryStore(""), logging.Discard())
	require.Error(t, a.Login(context.Background(), "a@mhp.com", "pw"))
}

func TestLogout_ClearsToken(t *testing.T) {
	store := session.NewMemoryStore("jwt")
	a := NewAuthService(&apitest.Fake{}, store, logging.Discard())

	require.NoError(t, a.Logout(context.Background()))
	tok, _ := store.Get(context.Background())
	require.Empty(t, tok)
}

func TestDetailOr(t *testing.T) {
	require.Equal(t, "boom", DetailOr(&api.Error{StatusCode: 500, Detail: "boom"}, "fallback"))
	require.Equal(t, "fallback", DetailOr(&api.Error{StatusCode: 500}, "fallback"))
	require.Equal(t, "fallback", DetailOr(api.ErrUnavailable, "fallback"))
}
