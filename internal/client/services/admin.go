package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/mhpportal/internal/client/api"
	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
	"github.com/dmitrijs2005/mhpportal/internal/validate"
)

// AdminState is a point-in-time copy of the admin console.
type AdminState struct {
	Users   []models.AdminUserRow
	Form    models.NewUser
	Message string
}

// AdminWorkflow drives the admin console. Only construct it after the
// guard admitted an admin identity.
type AdminWorkflow struct {
	api      api.Client
	validate *validate.Validator
	log      logging.Logger

	mu      sync.Mutex
	users   []models.AdminUserRow
	form    models.NewUser
	message string
}

func NewAdminWorkflow(client api.Client, log logging.Logger) *AdminWorkflow {
	return &AdminWorkflow{
		api:      client,
		validate: validate.New(),
		log:      log.With("workflow", "admin"),
	}
}

// Load fetches user statistics. A failure is logged and leaves the rows empty.
func (w *AdminWorkflow) Load(ctx context.Context) {
	stats, err := w.api.AdminStats(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.log.Error(ctx, "stats load failed", "op", "load", "err", err)
		w.users = nil
		return
	}
	w.users = stats.Users
}

func (w *AdminWorkflow) SetForm(email, fullName, password string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = models.NewUser{Email: email, FullName: fullName, Password: password}
}

// CreateUser submits the form as a regular user. The form is kept on
// failure so the action can be retried.
func (w *AdminWorkflow) CreateUser(ctx context.Context) {
	w.mu.Lock()
	form := w.form
	form.Role = models.RoleUser
	if err := w.validate.Struct(form); err != nil {
		if errors.Is(err, validate.ErrInvalid) {
			w.message = validate.Message(err)
		} else {
			w.message = MsgCreateFailed
		}
		w.mu.Unlock()
		return
	}
	w.message = ""
	w.mu.Unlock()

	if _, err := w.api.CreateUser(ctx, form); err != nil {
		w.log.Warn(ctx, "create user failed", "op", "create_user", "email", form.Email, "err", err)
		w.mu.Lock()
		w.message = DetailOr(err, MsgCreateFailed)
		w.mu.Unlock()
		return
	}

	w.mu.Lock()
	w.form = models.NewUser{}
	w.message = MsgUserCreated
	w.mu.Unlock()

	stats, err := w.api.AdminStats(ctx)
	if err != nil {
		w.log.Error(ctx, "stats refresh failed", "op", "create_user", "err", err)
		return
	}
	w.mu.Lock()
	w.users = stats.Users
	w.mu.Unlock()
}

func (w *AdminWorkflow) Snapshot() AdminState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return AdminState{
		Users:   append([]models.AdminUserRow(nil), w.users...),
		Form:    w.form,
		Message: w.message,
	}
}
