package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/mhpportal/internal/client/api"
	"github.com/dmitrijs2005/mhpportal/internal/client/export"
	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
)

// ReportState is a point-in-time copy of the dashboard.
type ReportState struct {
	Clients    []models.Client
	Reports    []models.Report
	Draft      models.Draft
	Message    string
	Loading    bool
	Summary    models.ReportSummary
	LastExport string
}

// ReportWorkflow drives the reporting dashboard.
type ReportWorkflow struct {
	api  api.Client
	sink export.Sink
	log  logging.Logger
	now  func() time.Time

	mu         sync.Mutex
	clients    []models.Client
	reports    []models.Report
	draft      models.Draft
	message    string
	loading    bool
	lastExport string
}

func NewReportWorkflow(client api.Client, sink export.Sink, log logging.Logger) *ReportWorkflow {
	return &ReportWorkflow{
		api:   client,
		sink:  sink,
		log:   log.With("workflow", "reports"),
		now:   time.Now,
		draft: models.DefaultDraft(),
	}
}

// Load fetches clients and reports together. If either fails both
// collections are left empty and the failure is only logged.
func (w *ReportWorkflow) Load(ctx context.Context) {
	w.mu.Lock()
	w.loading = true
	w.mu.Unlock()

	var clients []models.Client
	var reports []models.Report

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = w.api.ListClients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reports, err = w.api.MyReports(gctx)
		return err
	})
	err := g.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false
	if err != nil {
		w.log.Error(ctx, "load failed", "op", "load", "err", err)
		w.clients, w.reports = nil, nil
		return
	}
	w.clients, w.reports = clients, reports
}

// SelectClient picks a loaded client by id; an unknown id clears the selection.
func (w *ReportWorkflow) SelectClient(id int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.clients {
		if w.clients[i].ID == id {
			c := w.clients[i]
			w.draft.SelectedClient = &c
			return true
		}
	}
	w.draft.SelectedClient = nil
	return false
}

func (w *ReportWorkflow) SetShift(s models.ShiftTiming) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.ShiftTiming = s
}

func (w *ReportWorkflow) SetPayment(paid bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.PaymentReceived = paid
}

// Save posts the draft. Without a selected client it does nothing at all.
// The created report is put at the front of the list without a reload.
func (w *ReportWorkflow) Save(ctx context.Context) {
	w.mu.Lock()
	req, ok := w.draft.Submission()
	if !ok {
		w.mu.Unlock()
		return
	}
	w.message = ""
	w.mu.Unlock()

	created, err := w.api.CreateReport(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.log.Warn(ctx, "save failed", "op", "save", "err", err)
		w.message = DetailOr(err, MsgSaveFailed)
		return
	}
	w.reports = append([]models.Report{created}, w.reports...)
	w.draft = models.DefaultDraft()
	w.message = MsgSaved
}

// GeneratePDF downloads the server-rendered document and hands it to the sink.
func (w *ReportWorkflow) GeneratePDF(ctx context.Context) {
	w.setMessage(MsgGeneratingPDF)

	data, err := w.api.MyReportsPDF(ctx)
	if err != nil {
		w.log.Warn(ctx, "pdf fetch failed", "op", "pdf", "err", err)
		w.setMessage(DetailOr(err, MsgPDFFailed))
		return
	}

	loc, err := w.sink.Save(ctx, PDFName, data)
	if err != nil {
		w.log.Error(ctx, "pdf save failed", "op", "pdf", "err", err)
		w.setMessage(MsgPDFFailed)
		return
	}

	w.mu.Lock()
	w.message = MsgPDFGenerated
	w.draft = models.DefaultDraft()
	w.lastExport = loc
	w.mu.Unlock()

	w.refreshReports(ctx, "pdf")
}

// SendReport asks the server to email and then clear the user's reports.
func (w *ReportWorkflow) SendReport(ctx context.Context) {
	w.setMessage(MsgSending)

	if err := w.api.SendMyReports(ctx); err != nil {
		w.log.Warn(ctx, "send failed", "op", "send", "err", err)
		w.setMessage(DetailOr(err, MsgSendFailed))
		return
	}

	w.setMessage(MsgSent)
	w.refreshReports(ctx, "send")
}

// refreshReports reloads reports only. On failure the current list is kept.
func (w *ReportWorkflow) refreshReports(ctx context.Context, op string) {
	reports, err := w.api.MyReports(ctx)
	if err != nil {
		w.log.Error(ctx, "reports refresh failed", "op", op, "err", err)
		return
	}
	w.mu.Lock()
	w.reports = reports
	w.mu.Unlock()
}

func (w *ReportWorkflow) setMessage(m string) {
	w.mu.Lock()
	w.message = m
	w.mu.Unlock()
}

// Snapshot copies the current state for rendering.
func (w *ReportWorkflow) Snapshot() ReportState {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := ReportState{
		Clients:    append([]models.Client(nil), w.clients...),
		Reports:    append([]models.Report(nil), w.reports...),
		Draft:      w.draft,
		Message:    w.message,
		Loading:    w.loading,
		LastExport: w.lastExport,
	}
	if w.draft.SelectedClient != nil {
		c := *w.draft.SelectedClient
		s.Draft.SelectedClient = &c
	}
	s.Summary = models.Summarize(s.Reports, s.Clients, w.now())
	return s
}
