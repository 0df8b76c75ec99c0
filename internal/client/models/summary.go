package models

import "time"

// ReportSummary holds the dashboard counters derived from the loaded
// collections. It is display-only and never sent anywhere.
type ReportSummary struct {
	Total          int
	ThisMonth      int
	Today          int
	Paid           int
	Pending        int
	CompletionRate int // percent of paid reports, rounded
	ActiveClients  int
}

// Summarize computes the counters relative to now, in now's location.
func Summarize(reports []Report, clients []Client, now time.Time) ReportSummary {
	s := ReportSummary{Total: len(reports), ActiveClients: len(clients)}

	y, m, d := now.Date()
	for _, r := range reports {
		ry, rm, rd := r.CreatedAt.In(now.Location()).Date()
		if ry == y && rm == m {
			s.ThisMonth++
		}
		if ry == y && rm == m && rd == d {
			s.Today++
		}
		if r.PaymentReceived {
			s.Paid++
		} else {
			s.Pending++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = (s.Paid*100 + s.Total/2) / s.Total
	}
	return s
}
