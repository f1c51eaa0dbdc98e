package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/client"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/services"
	"github.com/shiftnotes/shiftnotes-cli/internal/common"
)

var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errNoList = errors.New("open a list first: assessments, mailbox or epas")

func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in. Use logout first.")
		return nil
	}

	email, err := getSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}
	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if err := a.auth.Login(ctx, email, string(pw)); err != nil {
		return err
	}
	u, _ := a.auth.User()
	printlnFn(fmt.Sprintf("Logged in as %s.", u.Name))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.closeScreens()
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	u, err := a.auth.RefreshUser(ctx)
	if err != nil {
		return err
	}
	renderUser(a.out, u)
	return nil
}

// Assessments opens an assessment list, replacing whatever list was open.
func (a *App) Assessments(ctx context.Context, args []string) error {
	scope, err := services.ParseScope(firstArg(args))
	if err != nil {
		return err
	}
	a.closeScreens()

	l := services.NewAssessmentList(a.api, scope, a.assessOpts)
	a.mu.Lock()
	a.list, a.active = l, l
	a.render = func() { renderAssessments(a.out, string(scope), l.Snapshot()) }
	a.mu.Unlock()

	l.Mount(ctx)
	return a.show()
}

func (a *App) Filter(_ context.Context, args []string) error {
	if len(args) != 1 || !strings.Contains(args[0], "=") {
		return errors.New("usage: filter key=value (empty value clears)")
	}
	key, value, _ := strings.Cut(args[0], "=")

	a.mu.Lock()
	l, c := a.list, a.curriculum
	a.mu.Unlock()
	switch {
	case l != nil:
		if err := l.ApplyFilter(key, value); err != nil {
			return err
		}
	case c != nil:
		c.EPAs.SetFilter(key, value)
	default:
		return errNoList
	}
	return a.show()
}

// Dates sets the shift date range on the open assessment list. Without
// arguments the configured DateInput is asked for both ends.
func (a *App) Dates(ctx context.Context, args []string) error {
	a.mu.Lock()
	l := a.list
	a.mu.Unlock()
	if l == nil {
		return errors.New("dates apply to an assessment list: open one with assessments")
	}

	input := a.dates
	switch len(args) {
	case 0:
	case 2:
		input = FixedDateInput{Values: map[string]string{
			services.FilterStartDate: args[0],
			services.FilterEndDate:   args[1],
		}}
	default:
		return errors.New("usage: dates [start end]")
	}

	start, err := input.ReadDate(ctx, services.FilterStartDate)
	if err != nil {
		return err
	}
	end, err := input.ReadDate(ctx, services.FilterEndDate)
	if err != nil {
		return err
	}
	if err := l.ApplyFilters(map[string]string{
		services.FilterStartDate: start,
		services.FilterEndDate:   end,
	}); err != nil {
		return err
	}
	return a.show()
}

// Search is an explicit submit, so the debounce is flushed right away.
func (a *App) Search(_ context.Context, args []string) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	s.SetSearch(strings.Join(args, " "))
	s.Flush()
	return a.show()
}

func (a *App) Page(_ context.Context, args []string) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(firstArg(args))
	if err != nil || n < 1 {
		return errors.New("usage: page n (n >= 1)")
	}
	s.SetPage(n)
	return a.show()
}

func (a *App) Next(context.Context) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	if !s.NextPage() {
		printlnFn("Already on the last page.")
		return nil
	}
	return a.show()
}

func (a *App) Prev(context.Context) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	if !s.PrevPage() {
		printlnFn("Already on the first page.")
		return nil
	}
	return a.show()
}

func (a *App) Sort(_ context.Context, args []string) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 || (len(args) == 2 && args[1] != "desc" && args[1] != "asc") {
		return errors.New("usage: sort key [asc|desc]")
	}
	s.SetSort(args[0], len(args) == 2 && args[1] == "desc")
	return a.show()
}

func (a *App) ToggleFilters(context.Context) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	s.ToggleFilters()
	return a.show()
}

// Mailbox opens the private comment inbox. Paging commands drive the unread list.
func (a *App) Mailbox(ctx context.Context) error {
	a.closeScreens()

	m := services.NewMailbox(a.api, a.assessOpts)
	a.mu.Lock()
	a.mailbox, a.active = m, m.Unread
	a.render = func() { renderMailbox(a.out, m) }
	a.mu.Unlock()

	m.Mount(ctx)
	m.Wait()
	a.render()
	return nil
}

func (a *App) Read(ctx context.Context, args []string) error {
	id := firstArg(args)
	if id == "" {
		return errors.New("usage: read <id>")
	}

	a.mu.Lock()
	m := a.mailbox
	a.mu.Unlock()
	if m == nil {
		if err := a.api.MarkRead(ctx, id); err != nil {
			return err
		}
		printlnFn("Marked as read.")
		return nil
	}

	if err := m.MarkRead(ctx, id); err != nil {
		return err
	}
	m.Wait()
	printlnFn("Marked as read.")
	a.render()
	return nil
}

func (a *App) Ack(ctx context.Context, args []string) error {
	id := firstArg(args)
	if id == "" {
		return errors.New("usage: ack <id>")
	}

	a.mu.Lock()
	l := a.list
	a.mu.Unlock()
	if l == nil {
		if _, err := a.api.Acknowledge(ctx, id); err != nil {
			return err
		}
		printlnFn("Acknowledged.")
		return nil
	}

	if err := l.Acknowledge(ctx, id); err != nil {
		return err
	}
	printlnFn("Acknowledged.")
	return a.show()
}

func (a *App) EPAs(ctx context.Context) error {
	a.closeScreens()

	c := services.NewCurriculum(a.api.EPAs(), a.epaOpts)
	a.mu.Lock()
	a.curriculum, a.active = c, c.EPAs
	a.render = func() { renderEPAs(a.out, c.EPAs.Snapshot()) }
	a.mu.Unlock()

	c.EPAs.Mount(ctx)
	return a.show()
}

func (a *App) Dashboard(ctx context.Context) error {
	u, ok := a.auth.User()
	if !ok {
		return client.ErrUnauthorized
	}
	data, err := a.dashboard.Load(ctx, u)
	if err != nil {
		return err
	}
	renderDashboard(a.out, data)
	return nil
}

// Export downloads a CSV. The open assessment list's filters and search
// narrow the export.
func (a *App) Export(ctx context.Context, args []string) error {
	kind := services.ExportKind(firstArg(args))
	if kind == "" {
		return errors.New("usage: export assessments|grid")
	}

	q := url.Values{}
	a.mu.Lock()
	l := a.list
	a.mu.Unlock()
	if l != nil {
		snap := l.Snapshot()
		for k, v := range snap.Query.Filters {
			q.Set(k, v)
		}
		if snap.Query.Search != "" {
			q.Set("search", snap.Query.Search)
		}
	}

	loc, err := a.exports.Export(ctx, kind, q)
	if err != nil {
		return err
	}
	printlnFn("Saved to", loc)
	return nil
}

// message is what the user sees for a failed command.
func (a *App) message(err error) string {
	var (
		apiErr  *client.APIError
		formErr *services.FormError
	)
	switch {
	case errors.Is(err, common.ErrEmptyCredentials):
		return "Please enter your email and password."
	case errors.As(err, &formErr):
		return formErr.Error()
	case errors.As(err, &apiErr),
		errors.Is(err, client.ErrInvalidCredentials),
		errors.Is(err, client.ErrUnavailable),
		errors.Is(err, client.ErrUnauthorized):
		return client.Message(err)
	case client.IsCanceled(err):
		return "Cancelled."
	}
	return err.Error()
}

func (a *App) current() (screen, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == nil {
		return nil, errNoList
	}
	return a.active, nil
}

// show waits for the open list to settle and renders it.
func (a *App) show() error {
	a.mu.Lock()
	s, render := a.active, a.render
	a.mu.Unlock()
	if s == nil {
		return errNoList
	}
	s.Wait()
	render()
	return nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
