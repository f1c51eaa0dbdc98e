package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/listquery"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/views"
)

type MailboxAPI interface {
	Mailbox(ctx context.Context, query url.Values) (models.Page[models.Assessment], error)
	MailboxRead(ctx context.Context, query url.Values) (models.Page[models.Assessment], error)
	MarkRead(ctx context.Context, id string) error
}

// Mailbox shows private comments addressed to the caller, split into unread
// and read lists.
type Mailbox struct {
	Unread *listquery.Controller[models.Assessment, views.Assessment]
	Read   *listquery.Controller[models.Assessment, views.Assessment]
	api    MailboxAPI
}

func NewMailbox(api MailboxAPI, opts listquery.Options[views.Assessment]) *Mailbox {
	unread, read := opts, opts
	unread.Name, read.Name = "mailbox.unread", "mailbox.read"
	return &Mailbox{
		Unread: listquery.New(api.Mailbox, views.NewAssessment, unread),
		Read:   listquery.New(api.MailboxRead, views.NewAssessment, read),
		api:    api,
	}
}

func (m *Mailbox) Mount(ctx context.Context) {
	m.Unread.Mount(ctx)
	m.Read.Mount(ctx)
}

func (m *Mailbox) Unmount() {
	m.Unread.Unmount()
	m.Read.Unmount()
}

func (m *Mailbox) Wait() {
	m.Unread.Wait()
	m.Read.Wait()
}

// MarkRead moves one item to the read list. Both lists are refetched so
// counts and contents come from the server.
func (m *Mailbox) MarkRead(ctx context.Context, id string) error {
	if err := m.api.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("mark read %s: %w", id, err)
	}
	m.Unread.Refetch()
	m.Read.Refetch()
	return nil
}

// Counts are the server totals from the latest loaded pages.
func (m *Mailbox) Counts() (unread, read int) {
	return m.Unread.Snapshot().Count, m.Read.Snapshot().Count
}
