// Package apitest provides an in-memory api.Client for tests.
package apitest

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mhpportal/internal/client/models"
)

// Fake records every call by name and returns the preset outputs. Hooks,
// when set, run instead of the preset values.
type Fake struct {
	mu    sync.Mutex
	calls []string

	// inputs captured
	LastLogin        [2]string
	LastCreateUser   *models.NewUser
	LastCreateReport *models.ReportCreate

	// outputs preset
	LoginResp models.Token
	LoginErr  error

	MeResp models.Identity
	MeErr  error

	CreateUserResp models.Identity
	CreateUserErr  error

	StatsResp models.AdminStats
	StatsErr  error

	ClientsResp []models.Client
	ClientsErr  error

	ReportsResp []models.Report
	ReportsErr  error

	CreateReportResp models.Report
	CreateReportErr  error

	PDFResp []byte
	PDFErr  error

	SendErr error

	OnMyReports func() ([]models.Report, error)
	OnSend      func() error
}

func (f *Fake) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

// Calls returns the names of every call made so far.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// Count returns how many times name was called.
func (f *Fake) Count(name string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

func (f *Fake) Login(_ context.Context, email, password string) (models.Token, error) {
	f.record("Login")
	f.mu.Lock()
	f.LastLogin = [2]string{email, password}
	f.mu.Unlock()
	return f.LoginResp, f.LoginErr
}

func (f *Fake) Me(context.Context) (models.Identity, error) {
	f.record("Me")
	return f.MeResp, f.MeErr
}

func (f *Fake) CreateUser(_ context.Context, u models.NewUser) (models.Identity, error) {
	f.record("CreateUser")
	f.mu.Lock()
	f.LastCreateUser = &u
	f.mu.Unlock()
	return f.CreateUserResp, f.CreateUserErr
}

func (f *Fake) AdminStats(context.Context) (models.AdminStats, error) {
	f.record("AdminStats")
	return f.StatsResp, f.StatsErr
}

func (f *Fake) ListClients(context.Context) ([]models.Client, error) {
	f.record("ListClients")
	return f.ClientsResp, f.ClientsErr
}

func (f *Fake) MyReports(context.Context) ([]models.Report, error) {
	f.record("MyReports")
	if f.OnMyReports != nil {
		return f.OnMyReports()
	}
	return f.ReportsResp, f.ReportsErr
}

func (f *Fake) CreateReport(_ context.Context, r models.ReportCreate) (models.Report, error) {
	f.record("CreateReport")
	f.mu.Lock()
	f.LastCreateReport = &r
	f.mu.Unlock()
	return f.CreateReportResp, f.CreateReportErr
}

func (f *Fake) MyReportsPDF(context.Context) ([]byte, error) {
	f.record("MyReportsPDF")
	return f.PDFResp, f.PDFErr
}

func (f *Fake) SendMyReports(context.Context) error {
	f.record("SendMyReports")
	if f.OnSend != nil {
		return f.OnSend()
	}
	return f.SendErr
}
