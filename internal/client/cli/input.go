package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shiftnotes/shiftnotes-cli/internal/common"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the terminal without echo.
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// DateInput supplies the bounds of a date-range filter. The implementation
// is chosen once when the App is built.
type DateInput interface {
	// ReadDate returns a YYYY-MM-DD date for field, or "" to clear it.
	ReadDate(ctx context.Context, field string) (string, error)
}

// PromptDateInput asks on the terminal and re-prompts until the answer is a
// valid date or empty.
type PromptDateInput struct {
	Reader *bufio.Reader
	Out    io.Writer
	// Attempts bounds re-prompting; zero means three.
	Attempts int
}

func (p *PromptDateInput) ReadDate(ctx context.Context, field string) (string, error) {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 3
	}
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := GetSimpleText(p.Reader, fmt.Sprintf("%s (YYYY-MM-DD, empty to clear)", field), p.Out)
		if err != nil {
			return "", err
		}
		if v, err := parseDate(text); err == nil {
			return v, nil
		}
		fmt.Fprintln(p.Out, "Please enter a date like 2026-01-31.")
	}
	return "", fmt.Errorf("%s: %w", field, common.ErrInvalidDate)
}

// FixedDateInput answers from a preset map, for scripted runs without a
// terminal. Missing fields read as "".
type FixedDateInput struct {
	Values map[string]string
}

func (f FixedDateInput) ReadDate(_ context.Context, field string) (string, error) {
	v, err := parseDate(f.Values[field])
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return "", common.ErrInvalidDate
	}
	return t.Format(time.DateOnly), nil
}
