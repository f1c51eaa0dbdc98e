package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	failWith error

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.failWith
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Me(ctx context.Context) error { return f.record("me", nil) }
func (f *fakeExec) Assessments(ctx context.Context, args []string) error {
	return f.record("assessments", args)
}
func (f *fakeExec) Filter(ctx context.Context, args []string) error { return f.record("filter", args) }
func (f *fakeExec) Dates(ctx context.Context, args []string) error  { return f.record("dates", args) }
func (f *fakeExec) Search(ctx context.Context, args []string) error { return f.record("search", args) }
func (f *fakeExec) Page(ctx context.Context, args []string) error   { return f.record("page", args) }
func (f *fakeExec) Next(ctx context.Context) error                  { return f.record("next", nil) }
func (f *fakeExec) Prev(ctx context.Context) error                  { return f.record("prev", nil) }
func (f *fakeExec) Sort(ctx context.Context, args []string) error   { return f.record("sort", args) }
func (f *fakeExec) ToggleFilters(ctx context.Context) error         { return f.record("filters", nil) }
func (f *fakeExec) Mailbox(ctx context.Context) error               { return f.record("mailbox", nil) }
func (f *fakeExec) Read(ctx context.Context, args []string) error   { return f.record("read", args) }
func (f *fakeExec) Ack(ctx context.Context, args []string) error    { return f.record("ack", args) }
func (f *fakeExec) EPAs(ctx context.Context) error                  { return f.record("epas", nil) }
func (f *fakeExec) Dashboard(ctx context.Context) error             { return f.record("dashboard", nil) }
func (f *fakeExec) Export(ctx context.Context, args []string) error { return f.record("export", args) }
func (f *fakeExec) message(err error) string                        { return "msg: " + err.Error() }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"assessments received",
		"filter status=submitted",
		"search chest pain",
		"page 2",
		"next",
		"sort shift_date desc",
		"mailbox",
		"read 7",
		"export grid",
		"foobar",
		"exit",
		"me",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	require.Equal(t, []string{
		"login", "assessments", "filter", "search", "page", "next", "sort", "mailbox", "read", "export",
	}, exec.calls)
	assert.Equal(t, []string{"received"}, exec.args[1])
	assert.Equal(t, []string{"chest", "pain"}, exec.args[3])
	assert.Equal(t, []string{"shift_date", "desc"}, exec.args[6])
}

func TestRunREPL_GuardsCommandsWhenAnonymous(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.NewReader("assessments\ndashboard\nwhatever\nquit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "anonymous" }, bufio.NewReader(input))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Please log in first.")
	assert.Contains(t, *lines, "Unknown command: whatever")
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_PrintsCommandErrorsAndContinues(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.NewReader("epas\ndashboard\n")
	exec := &fakeExec{loggedIn: true, failWith: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(input))

	assert.Equal(t, []string{"epas", "dashboard"}, exec.calls)
	assert.Equal(t, 2, countOf(*lines, "msg: boom"))
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "anonymous" }, bufio.NewReader(strings.NewReader("")))

	require.Len(t, *lines, 1)
	assert.Equal(t, "sn anonymous> ", (*lines)[0])
}

func countOf(lines []string, s string) int {
	n := 0
	for _, l := range lines {
		if l == s {
			n++
		}
	}
	return n
}
