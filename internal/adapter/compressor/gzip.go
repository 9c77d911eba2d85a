package compressor

import (
	"context"
	"fmt"
	"os/exec"
)

// Gzip wraps the external gzip utility, which replaces the file in place with
// its compressed form under a fixed ".gz" suffix.
type Gzip struct{}

func NewGzip() *Gzip {
	return &Gzip{}
}

func (g *Gzip) Compress(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "gzip", "-f", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gzip failed: %w, output: %s", err, string(output))
	}
	return nil
}

func (g *Gzip) CompressCommand(path string) string {
	return "gzip -f " + path
}
