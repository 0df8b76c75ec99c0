package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mhpportal/internal/client/guard"
	"github.com/dmitrijs2005/mhpportal/internal/client/services"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used
// to facilitate testing.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

// Login shows the login view. A still-valid credential skips the prompt and
// goes straight to the dashboard.
func (a *App) Login(ctx context.Context) error {
	res := a.guard.ActivateLogin(ctx)
	if res.State == guard.StateRedirecting {
		fmt.Fprintf(a.out, "Already signed in as %s\n", res.Identity.DisplayName())
		return a.Dashboard(ctx)
	}
	a.reset(ViewLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, services.LoginMessage(err))
		return nil
	}
	return a.Dashboard(ctx)
}

// Logout drops the credential and returns to the login view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "err", err)
		return err
	}
	a.reset(ViewLogin)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints the identity the server resolves for the stored credential.
func (a *App) Whoami(ctx context.Context) error {
	res := a.activate(ctx, guard.AnyAuthenticated)
	if !res.Admitted() {
		return nil
	}
	id := res.Identity
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", id.DisplayName(), id.Email, id.Role)
	return nil
}

// activate runs the guard for a view and performs the redirect it asks for.
func (a *App) activate(ctx context.Context, req guard.Requirement) guard.Result {
	fmt.Fprintln(a.out, "Loading...")
	res := a.guard.Activate(ctx, req)
	if !res.Admitted() {
		a.redirect(ctx, res.Target)
	}
	return res
}

func (a *App) redirect(ctx context.Context, target guard.Target) {
	switch target {
	case guard.TargetLogin:
		a.reset(ViewLogin)
		fmt.Fprintln(a.out, "Please log in (type 'login').")
	case guard.TargetDashboard:
		_ = a.Dashboard(ctx)
	}
}

// reset switches to v and drops any state owned by the previous view.
func (a *App) reset(v View) {
	a.view = v
	a.reports = nil
	a.admin = nil
	if v == ViewLogin {
		a.identity = nil
	}
}
