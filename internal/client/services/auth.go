package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mhpportal/internal/client/api"
	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/client/session"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
	"github.com/dmitrijs2005/mhpportal/internal/validate"
)

// AuthService signs the user in and out.
type AuthService struct {
	api      api.Client
	store    session.Store
	validate *validate.Validator
	log      logging.Logger
}

func NewAuthService(client api.Client, store session.Store, log logging.Logger) *AuthService {
	return &AuthService{api: client, store: store, validate: validate.New(), log: log}
}

// Login exchanges credentials for a token and stores it.
func (a *AuthService) Login(ctx context.Context, email, password string) error {
	if err := a.validate.Struct(models.Credentials{Email: email, Password: password}); err != nil {
		return err
	}

	tok, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "op", "login", "email", email, "err", err)
		return err
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("login: empty access token")
	}

	if err := a.store.Set(ctx, tok.AccessToken); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	a.log.Info(ctx, "logged in", "op", "login", "email", email)
	return nil
}

// Logout drops the stored credential. The server is not contacted.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// LoginMessage is the inline text for a failed Login.
func LoginMessage(err error) string {
	if errors.Is(err, validate.ErrInvalid) {
		return validate.Message(err)
	}
	return DetailOr(err, MsgLoginFailed)
}
