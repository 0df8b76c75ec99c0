package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/client/services"
)

const timeLayout = "2006-01-02 15:04"

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func renderDashboard(w io.Writer, id models.Identity, s services.ReportState) {
	fmt.Fprintf(w, "Dashboard: %s (%s)\n", id.DisplayName(), id.Role)

	sum := s.Summary
	fmt.Fprintf(w, "Total %d | This month %d | Today %d | Paid %d | Pending %d | Completion %d%% | Clients %d\n",
		sum.Total, sum.ThisMonth, sum.Today, sum.Paid, sum.Pending, sum.CompletionRate, sum.ActiveClients)

	fmt.Fprintln(w, "\nClients:")
	if len(s.Clients) == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  ID\tNAME\tPHONE\tADDRESS")
		for _, c := range s.Clients {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Address)
		}
		_ = tw.Flush()
	}

	fmt.Fprintln(w, "\nReports:")
	if len(s.Reports) == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  ID\tCLIENT\tSHIFT\tPAID\tCREATED")
		for _, r := range s.Reports {
			created := "-"
			if !r.CreatedAt.IsZero() {
				created = r.CreatedAt.Local().Format(timeLayout)
			}
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\n", r.ID, r.Client.Name, r.ShiftTiming, yesNo(r.PaymentReceived), created)
		}
		_ = tw.Flush()
	}

	fmt.Fprintln(w)
	renderDraft(w, s.Draft)
	if s.Message != "" {
		fmt.Fprintf(w, "> %s\n", s.Message)
	}
}

func renderDraft(w io.Writer, d models.Draft) {
	client := "<none>"
	if d.SelectedClient != nil {
		client = fmt.Sprintf("%s (#%d)", d.SelectedClient.Name, d.SelectedClient.ID)
	}
	fmt.Fprintf(w, "Draft: client=%s shift=%s paid=%s\n", client, d.ShiftTiming, yesNo(d.PaymentReceived))
}

func renderAdmin(w io.Writer, s services.AdminState) {
	fmt.Fprintln(w, "Admin: users")
	if len(s.Users) == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  ID\tEMAIL\tNAME\tREPORTS")
		for _, u := range s.Users {
			name, count := "-", "-"
			if u.FullName != nil {
				name = *u.FullName
			}
			if u.Count != nil {
				count = fmt.Sprint(*u.Count)
			}
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", u.ID, u.Email, name, count)
		}
		_ = tw.Flush()
	}
	if s.Message != "" {
		fmt.Fprintf(w, "> %s\n", s.Message)
	}
}
