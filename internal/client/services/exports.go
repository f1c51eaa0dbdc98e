package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/client"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/exportsink"
	"github.com/shiftnotes/shiftnotes-cli/internal/logging"
)

type ExportKind string

const (
	ExportAssessments    ExportKind = "assessments"
	ExportCompetencyGrid ExportKind = "grid"
)

type ExportAPI interface {
	ExportAssessments(ctx context.Context, query url.Values) (*client.Blob, error)
	ExportCompetencyGrid(ctx context.Context, query url.Values) (*client.Blob, error)
}

// Exports downloads server-built CSV files and stores them in a sink.
type Exports struct {
	api  ExportAPI
	sink exportsink.Sink
	log  logging.Logger
	now  func() time.Time
}

func NewExports(api ExportAPI, sink exportsink.Sink, log logging.Logger) *Exports {
	if log == nil {
		log = logging.Nop()
	}
	return &Exports{api: api, sink: sink, log: log, now: time.Now}
}

// Export returns where the file was stored.
func (e *Exports) Export(ctx context.Context, kind ExportKind, query url.Values) (string, error) {
	var (
		blob *client.Blob
		err  error
	)
	switch kind {
	case ExportAssessments:
		blob, err = e.api.ExportAssessments(ctx, query)
	case ExportCompetencyGrid:
		blob, err = e.api.ExportCompetencyGrid(ctx, query)
	default:
		return "", fmt.Errorf("unknown export %q (assessments, grid)", kind)
	}
	if err != nil {
		return "", fmt.Errorf("export %s: %w", kind, err)
	}

	name := blob.Filename
	if name == "" {
		name = fmt.Sprintf("%s_%s.csv", kind, e.now().Format("20060102_150405"))
	}
	ct := blob.ContentType
	if ct == "" {
		ct = "text/csv"
	}

	loc, err := e.sink.Put(ctx, name, ct, blob.Data)
	if err != nil {
		return "", fmt.Errorf("store export %s: %w", name, err)
	}
	e.log.Info(ctx, "export stored", "kind", kind, "location", loc, "bytes", len(blob.Data))
	return loc, nil
}
