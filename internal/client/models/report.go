package models

import (
	"strings"

	"github.com/dmitrijs2005/mhpportal/internal/timex"
)

// ShiftTiming is the part of the day a report covers.
type ShiftTiming string

const (
	ShiftMorning ShiftTiming = "Morning"
	ShiftEvening ShiftTiming = "Evening"
)

// ParseShiftTiming accepts the two shift names case-insensitively.
func ParseShiftTiming(s string) (ShiftTiming, bool) {
	switch {
	case strings.EqualFold(s, string(ShiftMorning)):
		return ShiftMorning, true
	case strings.EqualFold(s, string(ShiftEvening)):
		return ShiftEvening, true
	}
	return "", false
}

// Client is a reporting subject. Read-only on this side.
type Client struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Report is a persisted shift/payment record tied to one Client.
type Report struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id,omitempty"`
	ClientID        int64       `json:"client_id,omitempty"`
	Client          Client      `json:"client"`
	ShiftTiming     ShiftTiming `json:"shift_timing"`
	PaymentReceived bool        `json:"payment_received"`
	CreatedAt       timex.Time  `json:"created_at"`
}

// ReportCreate is the POST /reports/ body.
type ReportCreate struct {
	ClientID        int64       `json:"client_id"`
	ShiftTiming     ShiftTiming `json:"shift_timing"`
	PaymentReceived bool        `json:"payment_received"`
}

// Draft is the unsaved report form.
type Draft struct {
	SelectedClient  *Client
	ShiftTiming     ShiftTiming
	PaymentReceived bool
}

// DefaultDraft is the form state after activation and after every
// successful save, PDF generation or send.
func DefaultDraft() Draft {
	return Draft{ShiftTiming: ShiftMorning}
}

// Submission converts a draft into a create request. ok is false when no
// client is selected.
func (d Draft) Submission() (req ReportCreate, ok bool) {
	if d.SelectedClient == nil {
		return ReportCreate{}, false
	}
	return ReportCreate{
		ClientID:        d.SelectedClient.ID,
		ShiftTiming:     d.ShiftTiming,
		PaymentReceived: d.PaymentReceived,
	}, true
}
