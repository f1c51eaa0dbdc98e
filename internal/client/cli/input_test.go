package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shiftnotes/shiftnotes-cli/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(pw))

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(&out)
	require.Error(t, err)
}

func TestPromptDateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid date", input: "2026-03-01\n", want: "2026-03-01"},
		{name: "empty clears", input: "\n", want: ""},
		{name: "reprompts after bad input", input: "yesterday\n2026-02-30\n2026-02-28\n", want: "2026-02-28"},
		{name: "gives up after attempts", input: "a\nb\nc\nd\n", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &PromptDateInput{Reader: rdr(tc.input), Out: &out}
			got, err := p.ReadDate(context.Background(), "start_date")
			if tc.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPromptDateInput_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &PromptDateInput{Reader: rdr("2026-01-01\n"), Out: &bytes.Buffer{}}
	_, err := p.ReadDate(ctx, "end_date")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFixedDateInput(t *testing.T) {
	in := FixedDateInput{Values: map[string]string{"start_date": " 2026-01-05 ", "end_date": "05/01/2026"}}

	got, err := in.ReadDate(context.Background(), "start_date")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", got)

	_, err = in.ReadDate(context.Background(), "end_date")
	require.ErrorIs(t, err, common.ErrInvalidDate)

	got, err = in.ReadDate(context.Background(), "program")
	require.NoError(t, err)
	assert.Empty(t, got)
}
