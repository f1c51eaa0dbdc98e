package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/client"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/config"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/exportsink"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/listquery"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/repositories"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/services"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/session"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/views"
	"github.com/shiftnotes/shiftnotes-cli/internal/logging"
	"golang.org/x/term"
)

// screen is the part of a list controller the paging and search commands
// drive. Both assessment and EPA controllers satisfy it.
type screen interface {
	SetSearch(text string)
	Flush()
	SetPage(n int)
	NextPage() bool
	PrevPage() bool
	SetSort(key string, desc bool)
	ToggleFilters()
	Wait()
	Unmount()
}

type App struct {
	cfg *config.Config
	log logging.Logger
	db  *sql.DB

	api       *client.HTTPClient
	sess      *session.Session
	auth      *session.Provider
	dashboard *services.Dashboard
	exports   *services.Exports
	dates     DateInput

	in  *bufio.Reader
	out io.Writer

	mu         sync.Mutex
	assessOpts listquery.Options[views.Assessment]
	epaOpts    listquery.Options[views.EPA]
	list       *services.AssessmentList
	mailbox    *services.Mailbox
	curriculum *services.Curriculum
	active     screen
	render     func()
}

// NewApp wires the CLI against stdin and stdout.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	var dates DateInput = FixedDateInput{}
	in := bufio.NewReader(os.Stdin)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		dates = &PromptDateInput{Reader: in, Out: os.Stdout}
	}
	return newApp(ctx, cfg, log, in, os.Stdout, dates)
}

func newApp(ctx context.Context, cfg *config.Config, log logging.Logger, in *bufio.Reader, out io.Writer, dates DateInput) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := repositories.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}

	sink, err := newSink(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sess := session.New()
	api := client.New(cfg.APIBaseURL, sess, client.WithLogger(log))
	store := session.NewSQLiteStore(db, cfg.TokenPassphrase)

	return &App{
		cfg:       cfg,
		log:       log,
		db:        db,
		api:       api,
		sess:      sess,
		auth:      session.NewProvider(sess, api, store, log),
		dashboard: services.NewDashboard(api),
		exports:   services.NewExports(api, sink, log),
		dates:     dates,
		in:        in,
		out:       out,
		assessOpts: listquery.Options[views.Assessment]{
			DebounceWindow: cfg.DebounceWindow,
			PageSize:       cfg.PageSize,
			Logger:         log,
		},
		epaOpts: listquery.Options[views.EPA]{
			DebounceWindow: cfg.DebounceWindow,
			PageSize:       cfg.PageSize,
			Logger:         log,
		},
	}, nil
}

func newSink(ctx context.Context, cfg *config.Config) (exportsink.Sink, error) {
	if cfg.S3.Enabled() {
		s, err := exportsink.NewS3Sink(ctx, exportsink.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Prefix:    cfg.S3.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("configure export bucket: %w", err)
		}
		return s, nil
	}
	return exportsink.NewFileSink(cfg.ExportDir), nil
}

// Run restores the previous session and starts the REPL. It returns when the
// user exits or stdin closes.
func (a *App) Run(ctx context.Context) error {
	if err := a.auth.Init(ctx); err != nil {
		a.log.Warn(ctx, "stored session dropped", "error", err)
	}
	if u, ok := a.auth.User(); ok {
		printlnFn(fmt.Sprintf("Welcome back, %s.", u.Name))
	}

	runREPL(ctx, a, a.status, a.in)
	return nil
}

// Close stops every open screen and closes the local database.
func (a *App) Close() error {
	a.closeScreens()
	return a.db.Close()
}

func (a *App) status() string {
	u, ok := a.auth.User()
	if !ok {
		return a.auth.Status().String()
	}
	return fmt.Sprintf("%s (%s)", u.Email, views.RoleLabel(u.Role))
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) closeScreens() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.list != nil {
		a.list.Unmount()
	}
	if a.mailbox != nil {
		a.mailbox.Unmount()
	}
	if a.curriculum != nil {
		a.curriculum.EPAs.Unmount()
	}
	a.list, a.mailbox, a.curriculum = nil, nil, nil
	a.active, a.render = nil, nil
}
