// Package export delivers generated documents: to a local directory, and
// optionally to an S3-compatible bucket as an archive copy.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/mhpportal/internal/logging"
)

// Sink stores data under name and returns where it ended up.
type Sink interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// FileSink writes into Dir, replacing any previous file of the same name.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

func (s *FileSink) Save(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir %s: %w", s.Dir, err)
	}

	tmp, err := os.CreateTemp(s.Dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	dst := filepath.Join(s.Dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("rename to %s: %w", dst, err)
	}
	return dst, nil
}

// ArchivingSink saves to Primary and then copies to Archive. Archive
// failures are logged and do not fail the save.
type ArchivingSink struct {
	Primary Sink
	Archive Sink
	Log     logging.Logger
}

func (s *ArchivingSink) Save(ctx context.Context, name string, data []byte) (string, error) {
	loc, err := s.Primary.Save(ctx, name, data)
	if err != nil {
		return "", err
	}
	if s.Archive == nil {
		return loc, nil
	}
	if archived, err := s.Archive.Save(ctx, name, data); err != nil {
		s.Log.Error(ctx, "archive copy failed", "op", "export", "name", name, "err", err)
	} else {
		s.Log.Info(ctx, "archived", "op", "export", "location", archived)
	}
	return loc, nil
}
