package api

import (
	"context"

	"github.com/dmitrijs2005/mhpportal/internal/client/models"
)

// Client is the consumed surface of the remote API.
type Client interface {
	Login(ctx context.Context, email, password string) (models.Token, error)
	Me(ctx context.Context) (models.Identity, error)
	CreateUser(ctx context.Context, u models.NewUser) (models.Identity, error)
	AdminStats(ctx context.Context) (models.AdminStats, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	MyReports(ctx context.Context) ([]models.Report, error)
	CreateReport(ctx context.Context, r models.ReportCreate) (models.Report, error)
	MyReportsPDF(ctx context.Context) ([]byte, error)
	SendMyReports(ctx context.Context) error
}
