package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/JotaJota96/mysqldumpgz/internal/adapter/compressor"
	"github.com/JotaJota96/mysqldumpgz/internal/adapter/database"
	"github.com/JotaJota96/mysqldumpgz/internal/adapter/storage"
	"github.com/JotaJota96/mysqldumpgz/internal/adapter/system"
	"github.com/JotaJota96/mysqldumpgz/internal/cli"
	"github.com/JotaJota96/mysqldumpgz/internal/config"
	"github.com/JotaJota96/mysqldumpgz/internal/display"
	"github.com/JotaJota96/mysqldumpgz/internal/domain"
	"github.com/JotaJota96/mysqldumpgz/internal/envcheck"
	"github.com/JotaJota96/mysqldumpgz/internal/infrastructure/logger"
	"github.com/JotaJota96/mysqldumpgz/internal/usecase"
)

type App struct {
	cfg     *config.Config
	printer *display.Printer
	logger  *logger.Logger
}

func New(cfg *config.Config, printer *display.Printer) (*App, error) {
	log, err := logger.New(cfg.App.LogLevel, cfg.App.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &App{
		cfg:     cfg,
		printer: printer,
		logger:  log,
	}, nil
}

func (a *App) Shutdown() {
	a.logger.Close()
}

// Run executes the parsed request and returns the process exit code.
func (a *App) Run(ctx context.Context, req *cli.RunRequest) int {
	switch req.Action {
	case cli.ActionHelp:
		fmt.Fprint(os.Stdout, display.Help(a.cfg.Jobs))
		return config.ExitOK
	case cli.ActionShowConfig:
		fmt.Fprint(os.Stdout, display.ConfigDump(a.cfg))
		return config.ExitOK
	case cli.ActionCheck:
		if envcheck.Run(ctx, a.printer, a.cfg.Backup.Commands) {
			return config.ExitOK
		}
		return config.ExitMissingCommand
	}

	backup := a.cfg.Backup

	// Simulate touches nothing, so neither root nor credentials are needed
	// and no confirmation is asked.
	if !req.Simulate {
		if backup.RequireRoot && os.Geteuid() != 0 {
			a.printer.Errorf("This program must be run as root")
			return config.ExitNotRoot
		}

		if backup.DBPassword == "" {
			password, err := a.promptPassword(backup.DBUser)
			if err != nil {
				a.printer.Errorf("Could not read password: %v", err)
				return config.ExitArgs
			}
			backup.DBPassword = password
		}

		if !req.AssumeYes && !a.confirm(req) {
			a.printer.Plainf("Aborted")
			return config.ExitOK
		}
	}

	runner := a.buildRunner(backup)

	spinner := a.startSpinner(req)
	defer spinner.Stop()

	// One goroutine per job, no shared state beyond each job's own result
	// slot. Jobs are isolated by construction: distinct output paths are a
	// precondition, not a negotiated resource.
	codes := make([]int, len(req.Jobs))
	var wg sync.WaitGroup
	for i, job := range req.Jobs {
		wg.Add(1)
		go func(i int, job *config.Job) {
			defer wg.Done()
			codes[i] = runner.Execute(ctx, job, req.Simulate)
		}(i, job)
	}
	wg.Wait()
	spinner.Stop()

	// First non-zero code in launch order, not completion order.
	for _, code := range codes {
		if code != config.ExitOK {
			return code
		}
	}
	return config.ExitOK
}

func (a *App) buildRunner(backup config.BackupConfig) *usecase.Runner {
	return usecase.NewRunner(
		database.NewMySQL(backup.DBUser, backup.DBPassword),
		compressor.NewGzip(),
		system.NewChown(backup.OwnerUser, backup.OwnerGroup),
		a.uploadTargets(),
		a.printer,
		a.logger,
		backup,
	)
}

func (a *App) uploadTargets() []usecase.UploadTarget {
	var targets []usecase.UploadTarget

	for _, targetCfg := range a.cfg.GetEnabledUploadTargets() {
		var stor domain.Storage
		var err error

		switch targetCfg.Type {
		case "gdrive":
			stor, err = storage.NewGDrive(&targetCfg)
		case "s3":
			stor, err = storage.NewS3(&targetCfg)
		case "telegram":
			stor, err = storage.NewTelegram(&targetCfg)
		default:
			a.logger.Warnf("unknown upload target type: %s", targetCfg.Type)
			continue
		}
		if err != nil {
			a.logger.Errorf("failed to initialize %s upload target: %v", targetCfg.Type, err)
			continue
		}

		targets = append(targets, usecase.UploadTarget{
			Name:    targetCfg.Type,
			Storage: stor,
		})
	}

	return targets
}

func (a *App) startSpinner(req *cli.RunRequest) *display.Spinner {
	spinner := display.NewSpinner(os.Stderr, "Running backups...")
	if !req.Simulate && isatty.IsTerminal(os.Stderr.Fd()) {
		spinner.Start()
	}
	return spinner
}

func (a *App) promptPassword(user string) (string, error) {
	fmt.Fprintf(os.Stdout, "Password for database user %s: ", user)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stdout)
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func (a *App) confirm(req *cli.RunRequest) bool {
	names := make([]string, len(req.Jobs))
	for i, job := range req.Jobs {
		names[i] = job.Name
	}
	a.printer.Plainf("The following databases will be dumped: %s", strings.Join(names, ", "))

	fmt.Fprint(os.Stdout, "Do you want to continue? [y/N] ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
