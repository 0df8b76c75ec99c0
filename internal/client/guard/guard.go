// Package guard decides, for every view activation, whether the current
// credential admits the user or the view redirects elsewhere.
//
// A check starts in StateChecking and ends in StateAdmitted or
// StateRedirecting. Each activation gets its own Check; nothing is shared
// between overlapping activations and the Identity is never cached.
package guard

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mhpportal/internal/client/api"
	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/client/session"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
)

type State int

const (
	StateChecking State = iota
	StateAdmitted
	StateRedirecting
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAdmitted:
		return "admitted"
	case StateRedirecting:
		return "redirecting"
	}
	return "unknown"
}

// Target is where a redirect goes.
type Target string

const (
	TargetNone      Target = ""
	TargetLogin     Target = "login"
	TargetDashboard Target = "dashboard"
)

// Requirement is the predicate a view places on the resolved Identity.
type Requirement struct {
	Name  string
	Allow func(models.Identity) bool
}

// AnyAuthenticated admits every identity the server resolves.
var AnyAuthenticated = Requirement{
	Name:  "authenticated",
	Allow: func(models.Identity) bool { return true },
}

// RequireRole admits only identities holding role.
func RequireRole(role models.Role) Requirement {
	return Requirement{
		Name:  "role:" + string(role),
		Allow: func(id models.Identity) bool { return id.Role == role },
	}
}

// Result is the terminal outcome of a check. Identity is set only when
// State is StateAdmitted on a protected view.
type Result struct {
	State    State
	Target   Target
	Identity models.Identity
}

func (r Result) Admitted() bool { return r.State == StateAdmitted }

type Guard struct {
	store session.Store
	api   api.Client
	log   logging.Logger
}

func New(store session.Store, client api.Client, log logging.Logger) *Guard {
	return &Guard{store: store, api: client, log: log}
}

// Check is a single activation.
type Check struct {
	mu      sync.Mutex
	history []State
}

func newCheck() *Check {
	return &Check{history: []State{StateChecking}}
}

func (c *Check) transition(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, s)
}

// History returns every state the check passed through, in order.
func (c *Check) History() []State {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]State, len(c.history))
	copy(out, c.history)
	return out
}

// State is the latest state of the check.
func (c *Check) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history[len(c.history)-1]
}

func (c *Check) finish(r Result) Result {
	c.transition(r.State)
	return r
}

// Activate runs a protected-view check.
func (g *Guard) Activate(ctx context.Context, req Requirement) Result {
	r, _ := g.ActivateWithCheck(ctx, req)
	return r
}

// ActivateWithCheck is Activate that also hands back the Check for inspection.
func (g *Guard) ActivateWithCheck(ctx context.Context, req Requirement) (Result, *Check) {
	c := newCheck()

	token, err := g.store.Get(ctx)
	if err != nil {
		g.log.Error(ctx, "read credential failed", "op", "guard", "err", err)
		token = ""
	}
	if token == "" {
		return c.finish(Result{State: StateRedirecting, Target: TargetLogin}), c
	}

	id, err := g.api.Me(ctx)
	if err != nil {
		g.log.Warn(ctx, "identity check failed", "op", "guard", "requirement", req.Name, "err", err)
		g.clear(ctx)
		return c.finish(Result{State: StateRedirecting, Target: TargetLogin}), c
	}

	if req.Allow != nil && !req.Allow(id) {
		g.log.Info(ctx, "requirement not met", "op", "guard", "requirement", req.Name, "role", string(id.Role))
		return c.finish(Result{State: StateRedirecting, Target: TargetDashboard}), c
	}

	return c.finish(Result{State: StateAdmitted, Identity: id}), c
}

// ActivateLogin checks the login view: a signed-in user goes to the
// dashboard, a stale credential is dropped and the login view is shown.
func (g *Guard) ActivateLogin(ctx context.Context) Result {
	c := newCheck()

	token, err := g.store.Get(ctx)
	if err != nil || token == "" {
		return c.finish(Result{State: StateAdmitted})
	}

	id, err := g.api.Me(ctx)
	if err != nil {
		g.clear(ctx)
		return c.finish(Result{State: StateAdmitted})
	}
	return c.finish(Result{State: StateRedirecting, Target: TargetDashboard, Identity: id})
}

func (g *Guard) clear(ctx context.Context) {
	if err := g.store.Clear(ctx); err != nil {
		g.log.Error(ctx, "clear credential failed", "op", "guard", "err", err)
	}
}
