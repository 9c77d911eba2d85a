package database

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/JotaJota96/mysqldumpgz/internal/config"
)

// MySQL wraps the external mysqldump utility. The dump lands directly at the
// output path via --result-file, so a failed run can leave a partial file
// behind; the caller is responsible for cleaning that up.
type MySQL struct {
	user     string
	password string
}

func NewMySQL(user, password string) *MySQL {
	return &MySQL{user: user, password: password}
}

func (m *MySQL) Dump(ctx context.Context, database, outputPath string) error {
	cmd := exec.CommandContext(ctx, "mysqldump", m.args(database, outputPath, m.password)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mysqldump failed: %w, output: %s", err, string(output))
	}
	return nil
}

// DumpCommand renders the mysqldump invocation with the password redacted.
func (m *MySQL) DumpCommand(database, outputPath string) string {
	args := m.args(database, outputPath, config.PasswordMask)
	line := "mysqldump"
	for _, arg := range args {
		line += " " + arg
	}
	return line
}

func (m *MySQL) args(database, outputPath, password string) []string {
	return []string{
		"-u", m.user,
		fmt.Sprintf("-p%s", password),
		"--single-transaction",
		"--quick",
		fmt.Sprintf("--result-file=%s", outputPath),
		database,
	}
}
