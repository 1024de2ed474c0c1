package probe

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
)

const (
	diskFiles    = 32
	diskFileSize = 256 * 1024
)

// diskProbe holds the scratch directory shared by the file probes.
type diskProbe struct {
	baseDir  string
	dir      string
	files    int
	fileSize int
}

func newDiskProbe(env Environment) diskProbe {
	base := ""
	if env.Config != nil {
		base = env.Config.WorkDir
	}

	return diskProbe{
		baseDir:  base,
		files:    diskFiles,
		fileSize: diskFileSize,
	}
}

func (p *diskProbe) makeDir() error {
	dir, err := os.MkdirTemp(p.baseDir, "benchreport-disk-*")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}

	p.dir = dir

	return nil
}

func (p *diskProbe) path(i int) string {
	return filepath.Join(p.dir, fmt.Sprintf("scratch-%03d.bin", i))
}

func (p *diskProbe) writeFile(i int, payload []byte) error {
	f, err := os.OpenFile(p.path(i), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating scratch file: %w", err)
	}

	if _, err := f.Write(payload); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing scratch file: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("syncing scratch file: %w", err)
	}

	return f.Close()
}

func (p *diskProbe) Cleanup(_ context.Context) error {
	if p.dir == "" {
		return nil
	}

	return os.RemoveAll(p.dir)
}

// fileReadProbe reads back files written during Prepare.
type fileReadProbe struct {
	diskProbe
}

func newFileReadProbe(env Environment) (Probe, error) {
	return &fileReadProbe{diskProbe: newDiskProbe(env)}, nil
}

func (p *fileReadProbe) ID() string { return catalog.ProbeFileRead }

func (p *fileReadProbe) Prepare(ctx context.Context) error {
	if err := p.makeDir(); err != nil {
		return err
	}

	payload := make([]byte, p.fileSize)
	for i := range payload {
		payload[i] = byte(i)
	}

	for i := 0; i < p.files; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := p.writeFile(i, payload); err != nil {
			return err
		}
	}

	return nil
}

func (p *fileReadProbe) Run(ctx context.Context) error {
	buf := make([]byte, 32*1024)

	for i := 0; i < p.files; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := os.Open(p.path(i))
		if err != nil {
			return fmt.Errorf("opening scratch file: %w", err)
		}

		if _, err := io.CopyBuffer(io.Discard, f, buf); err != nil {
			_ = f.Close()
			return fmt.Errorf("reading scratch file: %w", err)
		}

		if err := f.Close(); err != nil {
			return fmt.Errorf("closing scratch file: %w", err)
		}
	}

	return nil
}

// fileWriteProbe writes and syncs fresh files.
type fileWriteProbe struct {
	diskProbe
	payload []byte
}

func newFileWriteProbe(env Environment) (Probe, error) {
	return &fileWriteProbe{diskProbe: newDiskProbe(env)}, nil
}

func (p *fileWriteProbe) ID() string { return catalog.ProbeFileWrite }

func (p *fileWriteProbe) Prepare(_ context.Context) error {
	p.payload = make([]byte, p.fileSize)
	for i := range p.payload {
		p.payload[i] = byte(i * 7)
	}

	return p.makeDir()
}

func (p *fileWriteProbe) Run(ctx context.Context) error {
	for i := 0; i < p.files; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := p.writeFile(i, p.payload); err != nil {
			return err
		}
	}

	return nil
}
