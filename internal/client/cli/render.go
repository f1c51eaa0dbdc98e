package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/listquery"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/services"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/views"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderUser(w io.Writer, u models.User) {
	v := views.NewUser(u)
	tw := newTable(w)
	fmt.Fprintf(tw, "Name:\t%s\n", v.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", v.Email)
	fmt.Fprintf(tw, "Role:\t%s\n", v.Role)
	if v.Program != "" {
		fmt.Fprintf(tw, "Program:\t%s\n", v.Program)
	}
	tw.Flush()
}

func renderAssessments(w io.Writer, title string, s listquery.Snapshot[views.Assessment]) {
	fmt.Fprintf(w, "Assessments (%s)\n", title)
	renderFilters(w, s)
	if s.State == listquery.Error {
		fmt.Fprintln(w, "!", s.Message)
	}
	if len(s.Items) == 0 {
		if s.State != listquery.Error {
			fmt.Fprintln(w, "No assessments found.")
		}
		renderFooter(w, s.Query, s.Count, s.HasPrevious(), s.HasNext())
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tTRAINEE\tEVALUATOR\tEPAS\tAVG\tSTATUS")
	for _, a := range s.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.ShiftDate, a.Trainee, a.Evaluator, epaCodes(a.EPAs), average(a), statusCell(a))
	}
	tw.Flush()
	renderFooter(w, s.Query, s.Count, s.HasPrevious(), s.HasNext())
}

func renderMailbox(w io.Writer, m *services.Mailbox) {
	unread, read := m.Unread.Snapshot(), m.Read.Snapshot()
	fmt.Fprintf(w, "Mailbox: %d unread, %d read\n", unread.Count, read.Count)
	for _, part := range []struct {
		name string
		snap listquery.Snapshot[views.Assessment]
	}{{"Unread", unread}, {"Read", read}} {
		fmt.Fprintf(w, "%s:\n", part.name)
		if part.snap.State == listquery.Error {
			fmt.Fprintln(w, "!", part.snap.Message)
		}
		if len(part.snap.Items) == 0 {
			fmt.Fprintln(w, "  (empty)")
			continue
		}
		tw := newTable(w)
		for _, a := range part.snap.Items {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", a.ID, a.ShiftDate, a.Evaluator, epaCodes(a.EPAs))
		}
		tw.Flush()
	}
}

func renderEPAs(w io.Writer, s listquery.Snapshot[views.EPA]) {
	fmt.Fprintln(w, "EPAs")
	renderFilters(w, s)
	if s.State == listquery.Error {
		fmt.Fprintln(w, "!", s.Message)
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "CODE\tTITLE\tCATEGORY\tACTIVE")
	for _, e := range s.Items {
		active := "yes"
		if !e.Active {
			active = "no"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Code, e.Title, e.Category, active)
	}
	tw.Flush()
	renderFooter(w, s.Query, s.Count, s.HasPrevious(), s.HasNext())
}

func renderDashboard(w io.Writer, d *services.DashboardData) {
	fmt.Fprintf(w, "%s · %s", d.User.Name, d.User.Role)
	if d.User.Program != "" {
		fmt.Fprintf(w, " · %s", d.User.Program)
	}
	fmt.Fprintln(w)

	sum := d.Summary
	tw := newTable(w)
	fmt.Fprintf(tw, "Recent assessments:\t%d\n", sum.Total)
	fmt.Fprintf(tw, "Acknowledged:\t%d\n", sum.Acknowledged)
	fmt.Fprintf(tw, "Pending:\t%d\n", sum.Pending)
	if sum.Total > 0 {
		fmt.Fprintf(tw, "Average entrustment:\t%.2f (median %.1f)\n", sum.Average, sum.Median)
	}
	tw.Flush()

	recent := d.Received
	if recent == nil {
		recent = d.Given
	}
	for _, a := range recent {
		fmt.Fprintf(w, "  %s  %s  %s\n", a.ShiftDate, counterpart(d, a), epaCodes(a.EPAs))
	}

	if p := d.Program; p != nil {
		fmt.Fprintf(w, "Program %s: %d/%d active trainees, %d assessments in period, avg level %.2f\n",
			p.Program.Abbreviation, p.Metrics.ActiveTrainees, p.Metrics.TotalTrainees,
			p.Metrics.AssessmentsInPeriod, p.Metrics.AverageCompetencyLevel)
	}
	if len(d.Cohorts) > 0 {
		names := make([]string, 0, len(d.Cohorts))
		for _, c := range d.Cohorts {
			names = append(names, c.Name)
		}
		fmt.Fprintf(w, "Cohorts: %s\n", strings.Join(names, ", "))
	}
}

func renderFilters[V any](w io.Writer, s listquery.Snapshot[V]) {
	if !s.FiltersExpanded {
		return
	}
	fmt.Fprintln(w, "Filters:")
	if len(s.Query.Filters) == 0 && s.Query.Search == "" {
		fmt.Fprintln(w, "  (none)")
	}
	for k, v := range s.Query.Filters {
		fmt.Fprintf(w, "  %s = %s\n", k, v)
	}
	if s.Query.Search != "" {
		fmt.Fprintf(w, "  search = %s\n", s.Query.Search)
	}
	if s.Query.SortKey != "" {
		dir := "asc"
		if s.Query.SortDesc {
			dir = "desc"
		}
		fmt.Fprintf(w, "  sort = %s %s\n", s.Query.SortKey, dir)
	}
}

func renderFooter(w io.Writer, q listquery.Query, count int, prev, next bool) {
	var nav []string
	if prev {
		nav = append(nav, "prev")
	}
	if next {
		nav = append(nav, "next")
	}
	line := fmt.Sprintf("%d total", count)
	if q.Cursor == "" {
		line = fmt.Sprintf("Page %d, %s", q.Page, line)
	}
	if len(nav) > 0 {
		line += " [" + strings.Join(nav, ", ") + "]"
	}
	fmt.Fprintln(w, line)
}

func epaCodes(epas []views.EPAEvaluation) string {
	codes := make([]string, 0, len(epas))
	for _, e := range epas {
		codes = append(codes, e.Code)
	}
	return strings.Join(codes, ", ")
}

func average(a views.Assessment) string {
	if !a.HasAverage {
		return "-"
	}
	return fmt.Sprintf("%.2f", a.Average)
}

func statusCell(a views.Assessment) string {
	s := a.Status
	if a.Acknowledged {
		s += " ✓"
	}
	return s
}

func counterpart(d *services.DashboardData, a views.Assessment) string {
	if d.Received != nil {
		return a.Evaluator
	}
	return a.Trainee
}
