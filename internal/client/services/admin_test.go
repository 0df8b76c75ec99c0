package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/mhpportal/internal/client/api"
	"github.com/dmitrijs2005/mhpportal/internal/client/api/apitest"
	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestAdminLoad(t *testing.T) {
	rows := []models.AdminUserRow{{ID: 1, Email: "a@mhp.com", Count: intp(3)}}
	f := &apitest.Fake{StatsResp: models.AdminStats{Users: rows}}
	w := NewAdminWorkflow(f, logging.Discard())

	w.Load(context.Background())
	require.Equal(t, rows, w.Snapshot().Users)

	f.StatsErr = api.ErrUnavailable
	w.Load(context.Background())
	require.Empty(t, w.Snapshot().Users)
	require.Empty(t, w.Snapshot().Message)
}

func TestCreateUser_MissingRequired_SendsNothing(t *testing.T) {
	f := &apitest.Fake{}
	w := NewAdminWorkflow(f, logging.Discard())

	w.SetForm("", "No Email", "pw")
	w.CreateUser(context.Background())
	require.Equal(t, "email is required", w.Snapshot().Message)

	w.SetForm("x@mhp.com", "", "")
	w.CreateUser(context.Background())
	require.Equal(t, "password is required", w.Snapshot().Message)

	require.Zero(t, f.Count("CreateUser"))
	require.Equal(t, models.NewUser{Email: "x@mhp.com"}, w.Snapshot().Form)
}

func TestCreateUser_Success_ForcesRoleAndRefreshes(t *testing.T) {
	before := []models.AdminUserRow{{ID: 1, Email: "admin@mhp.com", Count: intp(0)}}
	after := append(before, models.AdminUserRow{ID: 2, Email: "new@mhp.com", Count: intp(0)})
	f := &apitest.Fake{StatsResp: models.AdminStats{Users: before}}
	w := NewAdminWorkflow(f, logging.Discard())
	w.Load(context.Background())

	f.StatsResp = models.AdminStats{Users: after}
	w.SetForm("new@mhp.com", "New Person", "secret")
	w.CreateUser(context.Background())

	s := w.Snapshot()
	require.Equal(t, MsgUserCreated, s.Message)
	require.Equal(t, models.NewUser{}, s.Form)
	require.Equal(t, after, s.Users)
	require.Equal(t, &models.NewUser{Email: "new@mhp.com", FullName: "New Person", Password: "secret", Role: models.RoleUser}, f.LastCreateUser)
	require.Equal(t, 2, f.Count("AdminStats"))
}

func TestCreateUser_Failure_KeepsFormAndRows(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"conflict detail", &api.Error{StatusCode: 400, Detail: "Email already registered"}, "Email already registered"},
		{"no detail", api.ErrUnavailable, MsgCreateFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []models.AdminUserRow{{ID: 1, Email: "admin@mhp.com"}}
			f := &apitest.Fake{StatsResp: models.AdminStats{Users: rows}, CreateUserErr: tt.err}
			w := NewAdminWorkflow(f, logging.Discard())
			w.Load(context.Background())

			w.SetForm("admin@mhp.com", "Dup", "pw")
			w.CreateUser(context.Background())

			s := w.Snapshot()
			require.Equal(t, tt.want, s.Message)
			require.Equal(t, models.NewUser{Email: "admin@mhp.com", FullName: "Dup", Password: "pw"}, s.Form)
			require.Equal(t, rows, s.Users)
			require.Equal(t, 1, f.Count("AdminStats"))
		})
	}
}
