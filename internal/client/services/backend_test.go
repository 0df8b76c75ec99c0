package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/timex"
)

// naiveLayout matches how the server renders timezone-less datetimes.
const naiveLayout = "2006-01-02T15:04:05.999999"

// reportJSON renders a report the way the server does, created_at without
// an offset.
func reportJSON(r models.Report) map[string]any {
	return map[string]any{
		"id":               r.ID,
		"user_id":          r.UserID,
		"client_id":        r.ClientID,
		"client":           r.Client,
		"shift_timing":     r.ShiftTiming,
		"payment_received": r.PaymentReceived,
		"created_at":       r.CreatedAt.UTC().Format(naiveLayout),
	}
}

// backend is an in-memory stand-in for the reporting API.
type backend struct {
	mu       sync.Mutex
	users    map[string]backendUser
	tokens   map[string]string
	clients  []models.Client
	reports  map[string][]models.Report
	nextID   int64
	pdfFail  int
	pdfBody  []byte
	requests []string
}

type backendUser struct {
	id       int64
	password string
	fullName string
	role     models.Role
}

func newBackend() *backend {
	return &backend{
		users: map[string]backendUser{
			"admin@mhp.com": {id: 1, password: "admin123", fullName: "Admin", role: models.RoleAdmin},
		},
		tokens: map[string]string{},
		clients: []models.Client{
			{ID: 10, Name: "Acme Care", Phone: "555-0100", Address: "1 Main St"},
			{ID: 11, Name: "Birch House", Phone: "555-0101", Address: "2 Oak Ave"},
		},
		reports: map[string][]models.Report{},
		nextID:  100,
		pdfBody: []byte("%PDF-1.4"),
	}
}

func (b *backend) start(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	return srv
}

func (b *backend) count(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if r == path {
			n++
		}
	}
	return n
}

func detail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}

func reply(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)

	if r.Method == http.MethodPost && r.URL.Path == "/auth/login" {
		_ = r.ParseForm()
		u, ok := b.users[r.PostForm.Get("username")]
		if !ok || u.password != r.PostForm.Get("password") {
			detail(w, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		tok := "tok-" + r.PostForm.Get("username")
		b.tokens[tok] = r.PostForm.Get("username")
		reply(w, models.Token{AccessToken: tok, TokenType: "bearer"})
		return
	}

	email, ok := b.tokens[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
	if !ok {
		detail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	me := b.users[email]

	switch r.Method + " " + r.URL.Path {
	case "GET /auth/me":
		name := me.fullName
		reply(w, models.Identity{ID: me.id, Email: email, FullName: &name, Role: me.role})
	case "GET /clients/":
		reply(w, b.clients)
	case "GET /reports/me":
		out := b.reports[email]
		if out == nil {
			out = []models.Report{}
		}
		wire := make([]map[string]any, len(out))
		for i, rep := range out {
			wire[i] = reportJSON(rep)
		}
		reply(w, wire)
	case "POST /reports/":
		var in models.ReportCreate
		_ = json.NewDecoder(r.Body).Decode(&in)
		var client models.Client
		for _, c := range b.clients {
			if c.ID == in.ClientID {
				client = c
			}
		}
		b.nextID++
		rep := models.Report{
			ID: b.nextID, UserID: me.id, ClientID: in.ClientID, Client: client,
			ShiftTiming: in.ShiftTiming, PaymentReceived: in.PaymentReceived,
			CreatedAt: timex.Time{Time: time.Date(2025, 3, 7, 9, 0, 0, 123456000, time.UTC)},
		}
		b.reports[email] = append([]models.Report{rep}, b.reports[email]...)
		reply(w, reportJSON(rep))
	case "GET /pdf/me":
		if b.pdfFail != 0 {
			w.WriteHeader(b.pdfFail)
			_, _ = w.Write([]byte("Internal Server Error"))
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(b.pdfBody)
	case "POST /pdf/me/send":
		b.reports[email] = nil
		reply(w, map[string]string{"message": "Email sent"})
	case "GET /admin/stats":
		if me.role != models.RoleAdmin {
			detail(w, http.StatusForbidden, "Not enough permissions")
			return
		}
		rows := []models.AdminUserRow{}
		for e, u := range b.users {
			n := len(b.reports[e])
			name := u.fullName
			rows = append(rows, models.AdminUserRow{ID: u.id, Email: e, FullName: &name, Count: &n})
		}
		reply(w, models.AdminStats{Users: rows})
	case "POST /auth/users":
		var in models.NewUser
		_ = json.NewDecoder(r.Body).Decode(&in)
		if _, dup := b.users[in.Email]; dup {
			detail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		b.nextID++
		b.users[in.Email] = backendUser{id: b.nextID, password: in.Password, fullName: in.FullName, role: in.Role}
		reply(w, models.Identity{ID: b.nextID, Email: in.Email, Role: in.Role})
	default:
		detail(w, http.StatusNotFound, "Not Found")
	}
}
