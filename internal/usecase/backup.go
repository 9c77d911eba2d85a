package usecase

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/JotaJota96/mysqldumpgz/internal/config"
	"github.com/JotaJota96/mysqldumpgz/internal/display"
	"github.com/JotaJota96/mysqldumpgz/internal/domain"
)

type Logger interface {
	Infof(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

// UploadTarget is one enabled remote destination for finished backups.
type UploadTarget struct {
	Name    string
	Storage domain.Storage
}

// Runner executes the backup chain for a single job:
// dump -> compress -> chown, then optional uploads. Each step's failure is
// terminal for that job and maps to a fixed exit code; sibling jobs are
// never affected.
type Runner struct {
	db         domain.Database
	compressor domain.Compressor
	owner      domain.Owner
	uploads    []UploadTarget
	printer    *display.Printer
	logger     Logger
	backup     config.BackupConfig

	// now is replaceable in tests.
	now func() time.Time
}

func NewRunner(
	db domain.Database,
	compressor domain.Compressor,
	owner domain.Owner,
	uploads []UploadTarget,
	printer *display.Printer,
	logger Logger,
	backup config.BackupConfig,
) *Runner {
	return &Runner{
		db:         db,
		compressor: compressor,
		owner:      owner,
		uploads:    uploads,
		printer:    printer,
		logger:     logger,
		backup:     backup,
		now:        time.Now,
	}
}

// Execute runs one job and returns its exit code. In simulate mode it prints
// the commands that would run and touches nothing, succeeding regardless of
// credentials or path collisions.
func (r *Runner) Execute(ctx context.Context, job *config.Job, simulate bool) int {
	sqlPath, dir := SQLPath(r.backup, job, r.now())
	gzPath := sqlPath + config.CompressedSuffix

	if simulate {
		r.printer.Commandf("%s", r.db.DumpCommand(job.Database, sqlPath))
		r.printer.Commandf("%s", r.compressor.CompressCommand(sqlPath))
		r.printer.Commandf("%s", r.owner.ChownCommand(gzPath))
		return config.ExitOK
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			r.printer.Errorf("[%s] Cannot create folder %s: %v", job.Name, dir, err)
			return config.ExitArgs
		}
	}

	if code := r.validate(job, sqlPath, gzPath); code != config.ExitOK {
		return code
	}

	r.logger.Infof("[%s] starting backup to %s", job.Name, sqlPath)
	start := r.now()

	r.printer.Commandf("%s", r.db.DumpCommand(job.Database, sqlPath))
	if err := r.db.Dump(ctx, job.Database, sqlPath); err != nil {
		r.printer.Errorf("[%s] Dump failed: %v", job.Name, err)
		r.logger.Errorf("[%s] dump failed: %v", job.Name, err)
		// mysqldump may leave a partial file even on failure.
		os.Remove(sqlPath)
		return config.ExitDumpFailed
	}

	r.printer.Commandf("%s", r.compressor.CompressCommand(sqlPath))
	if err := r.compressor.Compress(ctx, sqlPath); err != nil {
		// The uncompressed dump is complete and usable; it is left behind.
		r.printer.Errorf("[%s] Compression failed: %v", job.Name, err)
		r.logger.Errorf("[%s] compression failed: %v", job.Name, err)
		return config.ExitCompressFailed
	}

	r.printer.Commandf("%s", r.owner.ChownCommand(gzPath))
	if err := r.owner.Chown(ctx, gzPath); err != nil {
		r.printer.Errorf("[%s] Ownership change failed: %v", job.Name, err)
		r.logger.Errorf("[%s] chown failed: %v", job.Name, err)
		return config.ExitChownFailed
	}

	r.printer.Successf("[%s] Backup created: %s", job.Name, gzPath)
	r.logger.Infof("[%s] backup completed in %s: %s",
		job.Name, time.Since(start).Round(time.Second), gzPath)

	r.uploadToTargets(ctx, job, gzPath)

	return config.ExitOK
}

func (r *Runner) validate(job *config.Job, sqlPath, gzPath string) int {
	if r.backup.DBUser == "" || r.backup.DBPassword == "" {
		r.printer.Errorf("[%s] Database user and password are required", job.Name)
		return config.ExitArgs
	}
	if job.Database == "" {
		r.printer.Errorf("[%s] Database name is empty", job.Name)
		return config.ExitArgs
	}
	if sqlPath == "" {
		r.printer.Errorf("[%s] Output file path is empty", job.Name)
		return config.ExitArgs
	}

	for _, path := range []string{sqlPath, gzPath} {
		switch CanCreate(path) {
		case CreateExists:
			r.printer.Errorf("[%s] File already exists: %s", job.Name, path)
			return config.ExitArgs
		case CreateParentMissing:
			r.printer.Errorf("[%s] Folder does not exist: %s", job.Name, filepath.Dir(path))
			return config.ExitArgs
		}
	}

	return config.ExitOK
}

// uploadToTargets copies the artifact to every enabled target. Failures are
// logged per target and do not change the job's exit code.
func (r *Runner) uploadToTargets(ctx context.Context, job *config.Job, gzPath string) {
	if len(r.uploads) == 0 {
		return
	}

	remoteName := filepath.Base(gzPath)
	var wg sync.WaitGroup

	for _, target := range r.uploads {
		wg.Add(1)
		go func(t UploadTarget) {
			defer wg.Done()

			r.logger.Infof("[%s] uploading to %s...", job.Name, t.Name)
			if err := t.Storage.Upload(ctx, gzPath, remoteName); err != nil {
				r.printer.Warningf("[%s] Upload to %s failed: %v", job.Name, t.Name, err)
				r.logger.Errorf("[%s] upload to %s failed: %v", job.Name, t.Name, err)
				return
			}
			r.logger.Infof("[%s] uploaded to %s", job.Name, t.Name)
		}(target)
	}

	wg.Wait()
}
