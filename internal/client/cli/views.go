package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/mhpportal/internal/client/guard"
	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/client/services"
)

var (
	errNotOnDashboard = errors.New("not on dashboard")
	errNotOnAdmin     = errors.New("not on admin view")
)

// Dashboard activates the reporting view.
func (a *App) Dashboard(ctx context.Context) error {
	res := a.activate(ctx, guard.AnyAuthenticated)
	if !res.Admitted() {
		return nil
	}
	a.reset(ViewDashboard)
	id := res.Identity
	a.identity = &id

	a.reports = services.NewReportWorkflow(a.api, a.sink, a.log)
	a.reports.Load(ctx)
	renderDashboard(a.out, id, a.reports.Snapshot())
	return nil
}

// Admin activates the admin console. Non-admins end up on the dashboard.
func (a *App) Admin(ctx context.Context) error {
	res := a.activate(ctx, guard.RequireRole(models.RoleAdmin))
	if !res.Admitted() {
		return nil
	}
	a.reset(ViewAdmin)
	id := res.Identity
	a.identity = &id

	a.admin = services.NewAdminWorkflow(a.api, a.log)
	a.admin.Load(ctx)
	renderAdmin(a.out, a.admin.Snapshot())
	return nil
}

// Show renders the current view again without reloading.
func (a *App) Show(context.Context) error {
	switch {
	case a.view == ViewDashboard && a.reports != nil:
		renderDashboard(a.out, *a.identity, a.reports.Snapshot())
	case a.view == ViewAdmin && a.admin != nil:
		renderAdmin(a.out, a.admin.Snapshot())
	default:
		fmt.Fprintln(a.out, "Nothing to show. Type 'login'.")
	}
	return nil
}

func (a *App) dashboard() (*services.ReportWorkflow, error) {
	if a.view != ViewDashboard || a.reports == nil {
		fmt.Fprintln(a.out, "Open the dashboard first (type 'dashboard').")
		return nil, errNotOnDashboard
	}
	return a.reports, nil
}

// Select picks the client for the draft: select <client id>.
func (a *App) Select(_ context.Context, args []string) error {
	w, err := a.dashboard()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: select <client id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || !w.SelectClient(id) {
		w.SelectClient(-1)
		fmt.Fprintf(a.out, "No client with id %s\n", args[0])
		return nil
	}
	renderDraft(a.out, w.Snapshot().Draft)
	return nil
}

// Shift sets the draft shift: shift morning|evening.
func (a *App) Shift(_ context.Context, args []string) error {
	w, err := a.dashboard()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: shift morning|evening")
		return nil
	}
	s, ok := models.ParseShiftTiming(args[0])
	if !ok {
		fmt.Fprintln(a.out, "Usage: shift morning|evening")
		return nil
	}
	w.SetShift(s)
	renderDraft(a.out, w.Snapshot().Draft)
	return nil
}

// Paid sets whether payment was received: paid yes|no.
func (a *App) Paid(_ context.Context, args []string) error {
	w, err := a.dashboard()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: paid yes|no")
		return nil
	}
	paid, ok := parseYesNo(args[0])
	if !ok {
		fmt.Fprintln(a.out, "Usage: paid yes|no")
		return nil
	}
	w.SetPayment(paid)
	renderDraft(a.out, w.Snapshot().Draft)
	return nil
}

func (a *App) Save(ctx context.Context) error {
	w, err := a.dashboard()
	if err != nil {
		return err
	}
	if w.Snapshot().Draft.SelectedClient == nil {
		fmt.Fprintln(a.out, "Select a client first (select <client id>).")
		return nil
	}
	w.Save(ctx)
	renderDashboard(a.out, *a.identity, w.Snapshot())
	return nil
}

func (a *App) PDF(ctx context.Context) error {
	w, err := a.dashboard()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, services.MsgGeneratingPDF)
	w.GeneratePDF(ctx)
	s := w.Snapshot()
	if s.Message == services.MsgPDFGenerated && s.LastExport != "" {
		fmt.Fprintf(a.out, "Saved to %s\n", s.LastExport)
	}
	renderDashboard(a.out, *a.identity, s)
	return nil
}

func (a *App) Send(ctx context.Context) error {
	w, err := a.dashboard()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, services.MsgSending)
	w.SendReport(ctx)
	renderDashboard(a.out, *a.identity, w.Snapshot())
	return nil
}

// AddUser prompts for the create-user form. Values kept from a failed
// attempt are offered as defaults.
func (a *App) AddUser(ctx context.Context) error {
	if a.view != ViewAdmin || a.admin == nil {
		fmt.Fprintln(a.out, "Open the admin view first (type 'admin').")
		return errNotOnAdmin
	}
	form := a.admin.Snapshot().Form

	email, err := getTextWithDefault(a.reader, "Email", form.Email, a.out)
	if err != nil {
		return err
	}
	fullName, err := getTextWithDefault(a.reader, "Full name", form.FullName, a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	if password == "" {
		password = form.Password
	}

	a.admin.SetForm(email, fullName, password)
	a.admin.CreateUser(ctx)
	renderAdmin(a.out, a.admin.Snapshot())
	return nil
}

func parseYesNo(s string) (bool, bool) {
	switch s {
	case "y", "yes", "true", "1":
		return true, true
	case "n", "no", "false", "0":
		return false, true
	}
	return false, false
}
