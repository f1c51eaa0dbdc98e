package exportsink

import (
	"context"
	"fmt"

	"github.com/shiftnotes/shiftnotes-cli/internal/filex"
)

type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Put(ctx context.Context, name, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("export dir: %w", err)
	}
	return filex.WriteFile(dir, name, data)
}
