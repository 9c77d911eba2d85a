package system

import (
	"context"
	"fmt"
	"os/exec"
)

// Chown wraps the external chown utility to assign the configured system
// owner to finished backup files.
type Chown struct {
	user  string
	group string
}

func NewChown(user, group string) *Chown {
	return &Chown{user: user, group: group}
}

func (c *Chown) Chown(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "chown", c.spec(), path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("chown failed: %w, output: %s", err, string(output))
	}
	return nil
}

func (c *Chown) ChownCommand(path string) string {
	return fmt.Sprintf("chown %s %s", c.spec(), path)
}

func (c *Chown) spec() string {
	return c.user + ":" + c.group
}
