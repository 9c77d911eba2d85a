// Package envcheck verifies that the external commands the backup chain
// shells out to are actually invocable. It is a diagnostic run on demand via
// --check, not a gate in front of other operations.
package envcheck

import (
	"context"
	"os/exec"

	"github.com/JotaJota96/mysqldumpgz/internal/display"
)

// Run probes every command with --version and reports each result through the
// printer. It first emits one sample message of each kind as a visual
// self-test of the terminal output. Returns true only if every command
// responded.
func Run(ctx context.Context, printer *display.Printer, commands []string) bool {
	printer.Plainf("Sample plain message")
	printer.Commandf("sample command echo")
	printer.Successf("Sample success message")
	printer.Warningf("Sample warning message")
	printer.Errorf("Sample error message")

	ok := true
	for _, command := range commands {
		cmd := exec.CommandContext(ctx, command, "--version")
		if err := cmd.Run(); err != nil {
			printer.Errorf("Command not found: %s", command)
			ok = false
			continue
		}
		printer.Successf("Found: %s", command)
	}

	return ok
}
